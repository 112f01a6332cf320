package dataflags

import (
	"fmt"

	"goclim/array"
	"goclim/calendar"
	"goclim/runlength"
)

// Defaults applied when OutsideNStandardDeviationsOfClimatology is called
// with non-positive window or n.
const (
	DefaultClimatologyWindow = 5
	DefaultClimatologySigmas = 5
)

// OutsideNStandardDeviationsOfClimatology compares every point against its
// smoothed day-of-year climatology, mean plus or minus n standard
// deviations. A series with every point in bounds does not flag; a series
// with some points out of bounds flags only when no point at all is in
// bounds. The partially-out case stays unflagged.
func OutsideNStandardDeviationsOfClimatology(da *array.DataArray, window int, n float64) (*array.BoolArray, error) {
	if window <= 0 {
		window = DefaultClimatologyWindow
	}
	if n <= 0 {
		n = DefaultClimatologySigmas
	}
	mu, sig, err := calendar.ClimatologicalMeanDOY(da, window)
	if err != nil {
		return nil, err
	}
	high, err := mu.Add(sig.MulScalar(n))
	if err != nil {
		return nil, err
	}
	low, err := mu.Sub(sig.MulScalar(n))
	if err != nil {
		return nil, err
	}
	within, err := calendar.WithinBndsDOY(da, high, low)
	if err != nil {
		return nil, err
	}

	all := within.All()
	ok, err := all.Item()
	if err != nil {
		return nil, err
	}
	var flag *array.BoolArray
	if ok {
		flag = all.Not()
	} else {
		flag = within.Any().Not()
	}
	flag.SetAttr(array.AttrComment, fmt.Sprintf("Outside of %g standard deviations from climatology", n))
	return flag, nil
}

// ValuesRepeatingFor5OrMoreDays flags runs of five or more consecutive
// identical values, whatever the variable measures.
func ValuesRepeatingFor5OrMoreDays(da *array.DataArray) (*array.BoolArray, error) {
	mask, err := runlength.SuspiciousIdenticalRun(da, 5)
	if err != nil {
		return nil, err
	}
	return annotated(mask, "Runs of repetitive values for 5 or more days"), nil
}
