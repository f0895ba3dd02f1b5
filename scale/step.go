package scale

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StepsPerLine is the number of steps a single line of text can show.
// A step is the height of this rune: ▁
const StepsPerLine = 8

// Kind is the kind of step a measurement was mapped to
type Kind uint8

// Step kinds
const (
	// KindZero is a zero measurement
	KindZero Kind = iota
	// KindBelow is a measurement that exists but is too small to draw
	KindBelow
	// KindExcluded is a measurement left out of the fitted range
	KindExcluded
	// KindLevel is a drawn measurement
	KindLevel
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindBelow:
		return "below"
	case KindExcluded:
		return "excluded"
	case KindLevel:
		return "level"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Step is a measurement scaled to the vertical resolution of a chart
type Step struct {
	Kind Kind
	// Level is the height in steps, set only for KindLevel
	Level int
}

// Zero, Below and Excluded are the steps without a level.
var (
	Zero     = Step{Kind: KindZero}
	Below    = Step{Kind: KindBelow}
	Excluded = Step{Kind: KindExcluded}
)

// Level returns a drawn step of n steps.
func Level(n int) Step {
	return Step{Kind: KindLevel, Level: n}
}

// Visible reports whether the step is drawn as a bar.
func (s Step) Visible() bool {
	return s.Kind == KindLevel && s.Level > 0
}

// Int returns the signed encoding: 0 zero, -1 below, -2 excluded, n level.
func (s Step) Int() int {
	switch s.Kind {
	case KindBelow:
		return -1
	case KindExcluded:
		return -2
	case KindLevel:
		return s.Level
	default:
		return 0
	}
}

func (s Step) String() string {
	if s.Kind == KindLevel {
		return "level(" + strconv.Itoa(s.Level) + ")"
	}

	return s.Kind.String()
}

// View decides which outliers stay in view when not all values fit.
type View int

// Views
const (
	// Bottom shows the small values when any fit within the height.
	// Larger values are drawn as excluded. If no small values exist,
	// the large ones are shown.
	Bottom View = iota
	// Top shows the large values when any do not fit within the height.
	// Smaller values are drawn as below. If no large values exist,
	// the small ones are shown.
	Top
)

func (v View) String() string {
	switch v {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	default:
		return "View(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseView returns the view named by s.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom":
		return Bottom, nil
	case "top":
		return Top, nil
	default:
		return Bottom, errors.Errorf("unknown view %q (bottom or top)", s)
	}
}
