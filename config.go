package stepchart

import (
	"github.com/noriah/stepchart/scale"
	"github.com/pkg/errors"
)

const (
	// MaxLen is the most measurements a chart can show.
	// Supports charts up to 200 characters in width.
	MaxLen = 100

	// MaxHeight is the tallest chart, in lines, whose steps fit in 16 bits
	MaxHeight = 4095
)

// DisplayMode determines how space surrounding the chart is used
type DisplayMode int

// Display modes
const (
	// Compact is just the chart
	Compact DisplayMode = iota
	// Portrait is the chart with a legend of labels below it
	Portrait
)

func (m DisplayMode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Portrait:
		return "portrait"
	default:
		return "unknown"
	}
}

// Options are the parameters of a chart
type Options struct {
	// Height is the vertical size of the chart, in lines of text
	Height int
	// View determines how outliers are displayed
	View scale.View
	// Display determines how space surrounding the chart is used
	Display DisplayMode
	// Labels hold one label per measurement, drawn in Portrait mode
	Labels []string
	// Monochrome draws without color
	Monochrome bool
}

// NewZeroOptions returns the default options
func NewZeroOptions() Options {
	return Options{
		Height:  8,
		View:    scale.Top,
		Display: Compact,
	}
}

// Validate checks the options against a chart of count measurements
func (opts *Options) Validate(count int) error {
	switch {
	case opts.Height < 1:
		return errors.New("height too small (1 min)")

	case opts.Height > MaxHeight:
		return errors.Errorf("height too large (%d max)", MaxHeight)
	}

	switch opts.View {
	case scale.Bottom, scale.Top:
	default:
		return errors.Errorf("unknown view %v", opts.View)
	}

	switch opts.Display {
	case Compact:
	case Portrait:
		if len(opts.Labels) != count {
			return errors.Errorf("label count should equal data length (%d != %d)",
				len(opts.Labels), count)
		}
	default:
		return errors.Errorf("unknown display mode %d", int(opts.Display))
	}

	return nil
}
