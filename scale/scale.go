package scale

import "math"

// maxMeasurement is the largest measurement that can be expressed in steps
// without additional scaling.
const maxMeasurement = math.MaxUint16

// Result holds the scaled series
type Result struct {
	// Primary steps, one per primary measurement
	Primary []Step
	// Compare steps, nil when there is no comparison series
	Compare []Step
	// ShowExcessive is set when the fit was made to the excessive values
	ShowExcessive bool
	// ScaleFactor is the number of steps per unit of measurement
	ScaleFactor float32
}

// Fit scales primary and compare to at most height lines of steps.
//
// Both series share one scale factor and one excessive classification,
// computed over the measurements of both. compare may be nil.
func Fit(primary, compare []uint32, height int, view View) Result {

	// the largest possible measurement that can be expressed within
	// height lines, in terms of steps
	var maxSteps = height * StepsPerLine

	var allMax uint32
	for _, set := range [2][]uint32{primary, compare} {
		for _, m := range set {
			if m > allMax {
				allMax = m
			}
		}
	}

	// nothing to fit. every measurement is zero.
	if allMax == 0 {
		return Result{
			Primary: mapSet(primary, func(uint32) Step { return Zero }),
			Compare: mapSet(compare, func(uint32) Step { return Zero }),
		}
	}

	var unit = int(float32(maxSteps) / float32(allMax))
	if unit < 1 {
		unit = 1
	}

	// measurements that can not be expressed in steps
	// without additional scaling
	var excessive = func(m uint32) bool {
		return m > maxMeasurement || int(m)*unit > maxSteps
	}

	var lowMax, highMax uint32
	var haveLow, haveHigh bool

	for _, set := range [2][]uint32{primary, compare} {
		for _, m := range set {
			switch {
			case m == 0:
			case excessive(m):
				haveHigh = true
				if m > highMax {
					highMax = m
				}
			default:
				haveLow = true
				if m > lowMax {
					lowMax = m
				}
			}
		}
	}

	var showExcessive bool
	var fitMax uint32

	switch {
	// fit the chart to the largest small value
	case view == Bottom && haveLow, view == Top && haveLow && !haveHigh:
		fitMax = lowMax

	// fit the chart to the largest large value
	case haveHigh:
		showExcessive = true
		fitMax = highMax

	default:
		panic("scale: no nonzero measurement to fit")
	}

	var factor = float32(maxSteps) / float32(fitMax)

	var toStep = func(m uint32) Step {
		if m == 0 {
			return Zero
		}

		switch {
		// some are excessive and we don't want them, and this is one of them
		case haveHigh && !showExcessive && excessive(m):
			return Excluded

		// some are excessive and we want them, but this isn't one of them
		case haveHigh && showExcessive && !excessive(m):
			return Below
		}

		var steps = int(float32(m) * factor)
		if steps > maxSteps {
			steps = maxSteps
		}

		// present, but still invisible next to the max
		if steps <= 0 {
			return Below
		}

		return Level(steps)
	}

	return Result{
		Primary:       mapSet(primary, toStep),
		Compare:       mapSet(compare, toStep),
		ShowExcessive: showExcessive,
		ScaleFactor:   factor,
	}
}

func mapSet(set []uint32, fn func(uint32) Step) []Step {
	if set == nil {
		return nil
	}

	var out = make([]Step, len(set))
	for xBin, m := range set {
		out[xBin] = fn(m)
	}

	return out
}
