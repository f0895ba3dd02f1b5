package input

import "github.com/pkg/errors"

// Layout errors
var (
	ErrPrimaryNotIntegers = errors.New("first column should be integers")
	ErrLabelsThenText     = errors.New("found: integer string string")
)

// Dataset is input sorted into measurements and labels
type Dataset struct {
	// Primary measurements
	Primary []uint32
	// Compare measurements, nil when absent
	Compare []uint32
	// Labels, nil when absent
	Labels []string
}

// Classify sorts columns into a dataset. The first column is the primary
// data. A second column of integers is comparison data, otherwise it is
// labels. A third column is only allowed after comparison data.
func Classify(c *Columns) (Dataset, error) {
	var primary, err = c.Integers(0)
	if err != nil {
		return Dataset{}, errors.Wrap(ErrPrimaryNotIntegers, err.Error())
	}

	var ds = Dataset{Primary: primary}

	if compare, err := c.Integers(1); err == nil {
		ds.Compare = compare
		ds.Labels = c.Strings(2)
		return ds, nil
	}

	if c.Count() > 2 {
		return Dataset{}, ErrLabelsThenText
	}

	ds.Labels = c.Strings(1)

	return ds, nil
}

// Max returns the largest measurement in the dataset
func (ds *Dataset) Max() uint32 {
	var peak uint32

	for _, set := range [2][]uint32{ds.Primary, ds.Compare} {
		for _, m := range set {
			if m > peak {
				peak = m
			}
		}
	}

	return peak
}
