package graphic

import "github.com/noriah/stepchart/scale"

const (
	// BarRune is the block we use for full bars
	BarRune rune = '█'

	// SpaceRune is the block we use for space
	SpaceRune rune = ' '

	// ZeroRune marks a zero measurement on the bottom line
	ZeroRune rune = '⨯'

	// BelowRune marks a measurement too small to draw
	BelowRune rune = '\U0001F883'

	// ExcludedRune marks a measurement too large to draw
	ExcludedRune rune = '\U0001F881'

	// AxisRune separates the ticks from the bars
	AxisRune rune = '│'
)

// barRunes indexed by the number of steps filled within a line
var barRunes = [scale.StepsPerLine + 1]rune{
	SpaceRune,
	'▁',
	'▂',
	'▃',
	'▄',
	'▅',
	'▆',
	'▇',
	BarRune,
}

// stepRune returns the rune for step s on the given line, counted from the
// bottom of the chart.
func stepRune(s scale.Step, layer int) rune {
	switch {
	case s.Kind == scale.KindExcluded:
		return ExcludedRune

	case s.Kind == scale.KindZero && layer == 0:
		return ZeroRune

	case s.Kind == scale.KindBelow && layer == 0:
		return BelowRune

	case s.Kind != scale.KindLevel:
		return SpaceRune
	}

	// range of steps on this layer: (start, start+8]
	var start = layer * scale.StepsPerLine

	switch {
	case s.Level <= start:
		return SpaceRune

	case s.Level > start+scale.StepsPerLine:
		return BarRune

	default:
		return barRunes[s.Level-start]
	}
}
