package graphic

import "github.com/fatih/color"

// Styles is the set of colors used to draw bars
type Styles struct {
	// Even and Odd alternate between neighbouring bars
	Even *color.Color
	Odd  *color.Color
	// Primary is used for bars that have a comparison bar beside them
	Primary *color.Color
	// Under colors comparison bars at or below their primary value
	Under *color.Color
	// Over colors comparison bars above their primary value
	Over *color.Color
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	var s = Styles{
		Even:    color.New(color.FgHiWhite),
		Odd:     color.New(color.FgWhite),
		Primary: color.New(color.FgHiWhite),
		Under:   color.New(color.FgHiGreen),
		Over:    color.New(color.FgHiRed),
	}

	for _, c := range s.all() {
		c.EnableColor()
	}

	return s
}

// MonochromeStyles returns styles that draw without escape codes.
func MonochromeStyles() Styles {
	var s = DefaultStyles()

	for _, c := range s.all() {
		c.DisableColor()
	}

	return s
}

func (s Styles) all() []*color.Color {
	return []*color.Color{s.Even, s.Odd, s.Primary, s.Under, s.Over}
}

// bar returns the style of the primary bar at xBin when drawn alone.
func (s Styles) bar(xBin int) *color.Color {
	if xBin%2 == 0 {
		return s.Even
	}

	return s.Odd
}

// compare returns the style of a comparison bar.
func (s Styles) compare(primary, compare uint32) *color.Color {
	if compare <= primary {
		return s.Under
	}

	return s.Over
}
