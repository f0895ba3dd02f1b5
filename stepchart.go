// Package stepchart draws compact bar charts of up to 100 values for the
// terminal, optionally beside a comparison series and above a legend of
// labels.
//
// Heights are measured in steps, the height of this character: ▁
// Each line of text holds 8 steps. Values that can not all be shown within
// the chart height are resolved by the view: Bottom keeps the small values
// in view and marks the large ones with 🢁, Top keeps the large values in view
// and marks the small ones with 🢃. Zero values are marked with ⨯.
package stepchart

import (
	"io"
	"strings"

	"github.com/noriah/stepchart/graphic"
	"github.com/noriah/stepchart/scale"
	"github.com/pkg/errors"
)

// Chart displays a slice of up to 100 measurements
type Chart struct {
	data    []uint32
	compare []uint32
	opts    Options
}

// Validate checks that data, compare and opts can make a chart.
// compare may be nil.
func Validate(data, compare []uint32, opts Options) error {
	if len(data) < 1 || len(data) > MaxLen {
		return errors.Errorf("data should contain between 1 and %d values (got %d)",
			MaxLen, len(data))
	}

	if compare != nil && len(compare) != len(data) {
		return errors.Errorf("compare data length should equal primary data length (%d != %d)",
			len(compare), len(data))
	}

	return errors.Wrap(opts.Validate(len(data)), "invalid options")
}

// New returns a chart of data, drawn next to compare when compare is not nil.
//
// New panics if Validate fails. The chart keeps the given slices; they
// should not be changed while the chart is in use.
func New(data, compare []uint32, opts Options) *Chart {
	if err := Validate(data, compare, opts); err != nil {
		panic(err)
	}

	return &Chart{
		data:    data,
		compare: compare,
		opts:    opts,
	}
}

// Steps returns the measurements scaled to the chart height.
func (c *Chart) Steps() scale.Result {
	return scale.Fit(c.data, c.compare, c.opts.Height, c.opts.View)
}

// Render writes the chart to w.
func (c *Chart) Render(w io.Writer) error {
	var styles = graphic.DefaultStyles()
	if c.opts.Monochrome {
		styles = graphic.MonochromeStyles()
	}

	var display = graphic.NewDisplay(graphic.Config{
		Height: c.opts.Height,
		Styles: styles,
	})

	var frame = graphic.Frame{
		Primary: c.data,
		Compare: c.compare,
		Steps:   c.Steps(),
	}

	if c.opts.Display == Portrait {
		frame.Labels = c.opts.Labels
	}

	return display.Draw(w, frame)
}

// String returns the rendered chart.
func (c *Chart) String() string {
	var sb strings.Builder

	// writes to a strings.Builder do not fail
	_ = c.Render(&sb)

	return sb.String()
}
