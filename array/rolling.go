package array

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// RollingMean returns a trailing moving average along dim. Position i of the
// result averages the window ending at i. Positions with an incomplete
// window are NaN, and a NaN anywhere in the window makes the result NaN.
// Layout and coordinates are unchanged.
func (a *DataArray) RollingMean(dim string, window int) (*DataArray, error) {
	if window < 1 {
		return nil, fmt.Errorf("rolling window must be at least 1, got %d", window)
	}
	coord := a.coords[dim] // zero Coord when absent, dropped by TransformAlong
	n, err := a.DimLen(dim)
	if err != nil {
		return nil, err
	}
	return a.TransformAlong(dim, n, coord, func(series, out []float64) {
		for i := range series {
			if i+1 < window {
				out[i] = math.NaN()
				continue
			}
			// stat.Mean propagates NaN, matching the strict window rule.
			out[i] = stat.Mean(series[i+1-window:i+1], nil)
		}
	})
}
