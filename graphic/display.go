package graphic

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/noriah/stepchart/scale"
	"github.com/pkg/errors"
)

const (
	// NarrowBins is the largest bin count drawn with single width bars
	NarrowBins = 10

	// PairWidth is the width of a bar with a comparison bar beside it,
	// including the space that follows it
	PairWidth = 3
)

// Config is the display configuration
type Config struct {
	// Height is the number of lines used for bars
	Height int
	// Styles are the bar colors
	Styles Styles
}

// Frame is a single chart worth of data
type Frame struct {
	// Primary measurements
	Primary []uint32
	// Compare measurements, nil for none
	Compare []uint32
	// Steps are the scaled measurements
	Steps scale.Result
	// Labels are drawn in a legend below the chart when not nil
	Labels []string
}

// Display draws frames as text
type Display struct {
	cfg Config
}

// NewDisplay returns a display using cfg.
func NewDisplay(cfg Config) *Display {
	return &Display{cfg: cfg}
}

// Draw writes the chart for f to w.
func (d *Display) Draw(w io.Writer, f Frame) error {
	if len(f.Steps.Primary) != len(f.Primary) {
		return errors.New("steps do not match primary measurements")
	}

	if f.Compare != nil && len(f.Steps.Compare) != len(f.Compare) {
		return errors.New("steps do not match compare measurements")
	}

	var bw = bufio.NewWriter(w)

	var minVis, maxVis = visibleRange(f)
	var maxTick = strconv.FormatUint(uint64(maxVis), 10)
	var minTick = strconv.FormatUint(uint64(minVis), 10)
	var spacer = strings.Repeat(" ", len(maxTick))

	// print steps in layers, from top to bottom.
	// each layer is a line of text, or 8 steps
	for layer := d.cfg.Height - 1; layer >= 0; layer-- {
		switch layer {
		case d.cfg.Height - 1:
			bw.WriteString(maxTick)
		case 0:
			bw.WriteString(strings.Repeat(" ", len(maxTick)-len(minTick)))
			bw.WriteString(minTick)
		default:
			bw.WriteString(spacer)
		}

		bw.WriteRune(AxisRune)

		d.drawLayer(bw, f, layer)

		bw.WriteByte('\n')
	}

	var chartWidth = drawOffsets(bw, spacer, len(f.Primary), f.Compare != nil)
	bw.WriteByte('\n')

	if f.Labels != nil {
		drawLegend(bw, f.Labels, chartWidth)
	}

	return errors.Wrap(bw.Flush(), "failed to write chart")
}

// drawLayer writes one line of each bar, from left to right.
func (d *Display) drawLayer(bw *bufio.Writer, f Frame, layer int) {
	var styles = d.cfg.Styles

	if f.Compare == nil {
		var width = barWidth(len(f.Primary))

		for xBin, step := range f.Steps.Primary {
			var bar = strings.Repeat(string(stepRune(step, layer)), width)
			bw.WriteString(styles.bar(xBin).Sprint(bar))
		}

		return
	}

	// with a comparison, each bar only needs to be one character wide
	// for offsets to fit at the bottom
	for xBin, step := range f.Steps.Primary {
		var cmpStep = f.Steps.Compare[xBin]
		var cmpStyle = styles.compare(f.Primary[xBin], f.Compare[xBin])

		bw.WriteString(styles.Primary.Sprint(string(stepRune(step, layer))))
		bw.WriteString(cmpStyle.Sprint(string(stepRune(cmpStep, layer))))
		bw.WriteRune(SpaceRune)
	}
}

// drawOffsets writes the index of each bar below it and returns the width of
// the chart, excluding the axis rune.
func drawOffsets(bw *bufio.Writer, spacer string, count int, paired bool) int {
	var width = PairWidth
	if !paired {
		width = barWidth(count)
	}

	bw.WriteString(spacer)
	bw.WriteRune(SpaceRune)

	var chartWidth = len(spacer)

	for xBin := 0; xBin < count; xBin++ {
		var offset = strconv.Itoa(xBin)
		bw.WriteString(offset)

		var pad = width - len(offset)
		if pad > 0 {
			bw.WriteString(strings.Repeat(" ", pad))
		} else {
			pad = 0
		}

		chartWidth += len(offset) + pad
	}

	return chartWidth
}

// barWidth is the width of a bar without comparison. Two characters are used
// when offsets need two digits.
func barWidth(count int) int {
	if count <= NarrowBins {
		return 1
	}

	return 2
}

// visibleRange returns the smallest and largest measurements drawn as bars.
// Both are zero when no bar is drawn.
func visibleRange(f Frame) (uint32, uint32) {
	var minVis, maxVis uint32
	var found bool

	var scan = func(set []uint32, steps []scale.Step) {
		for xBin, step := range steps {
			if !step.Visible() {
				continue
			}

			var m = set[xBin]

			if !found {
				minVis, maxVis, found = m, m, true
				continue
			}

			if m < minVis {
				minVis = m
			}

			if m > maxVis {
				maxVis = m
			}
		}
	}

	scan(f.Primary, f.Steps.Primary)

	if f.Compare != nil {
		scan(f.Compare, f.Steps.Compare)
	}

	return minVis, maxVis
}
