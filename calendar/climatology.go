package calendar

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"goclim/array"
)

// DimDayOfYear is the dimension name of per-day-of-year climatologies.
const DimDayOfYear = "dayofyear"

// ClimatologicalMeanDOY computes a smoothed per-day-of-year climatology of
// da: for every ordinal day, the mean and population standard deviation of
// all values whose position falls inside a centered window (in time steps)
// around an occurrence of that day, pooled across years. NaN values are
// skipped; days never observed come out NaN. The results replace the time
// dimension with a leading dayofyear dimension of length [MaxDayOfYear]
// and keep the other dimensions.
func ClimatologicalMeanDOY(da *array.DataArray, window int) (mu, sig *array.DataArray, err error) {
	if window < 1 {
		return nil, nil, fmt.Errorf("climatology window must be at least 1, got %d", window)
	}
	times, err := da.TimeCoord()
	if err != nil {
		return nil, nil, err
	}
	doys := make([]int, len(times))
	for i, t := range times {
		doys[i] = DayOfYear(t)
	}

	doyTicks := make([]float64, MaxDayOfYear)
	for i := range doyTicks {
		doyTicks[i] = float64(i + 1)
	}
	coord := array.ValueCoord(doyTicks)

	mu, err = da.ReduceAlong(array.DimTime, DimDayOfYear, coord, func(series []float64) []float64 {
		return reduceDOYGroups(series, doys, window, func(g []float64) (float64, error) {
			return stats.Mean(g)
		})
	})
	if err != nil {
		return nil, nil, err
	}
	sig, err = da.ReduceAlong(array.DimTime, DimDayOfYear, coord, func(series []float64) []float64 {
		return reduceDOYGroups(series, doys, window, func(g []float64) (float64, error) {
			return stats.StandardDeviation(g)
		})
	})
	if err != nil {
		return nil, nil, err
	}
	return mu, sig, nil
}

// reduceDOYGroups pools the window around every position into that
// position's day-of-year bucket, then reduces each bucket.
func reduceDOYGroups(series []float64, doys []int, window int, reduce func([]float64) (float64, error)) []float64 {
	groups := make([][]float64, MaxDayOfYear)
	left, right := (window-1)/2, window/2
	for i := range series {
		lo := max(i-left, 0)
		hi := min(i+right, len(series)-1)
		d := doys[i] - 1
		for j := lo; j <= hi; j++ {
			if !math.IsNaN(series[j]) {
				groups[d] = append(groups[d], series[j])
			}
		}
	}
	out := make([]float64, MaxDayOfYear)
	for d, g := range groups {
		v, err := reduce(g)
		if err != nil || len(g) == 0 {
			v = math.NaN()
		}
		out[d] = v
	}
	return out
}

// WithinBndsDOY tests every point of da against per-day-of-year bounds:
// point v at ordinal day d is within when low[d] <= v <= high[d]. The
// bounds must carry a leading dayofyear dimension of length [MaxDayOfYear]
// followed by da's non-time dimensions, which is the layout
// [ClimatologicalMeanDOY] produces. NaN on either side counts as out of
// bounds.
func WithinBndsDOY(da, high, low *array.DataArray) (*array.BoolArray, error) {
	times, err := da.TimeCoord()
	if err != nil {
		return nil, err
	}
	doys := make([]int, len(times))
	for i, t := range times {
		doys[i] = DayOfYear(t)
	}
	if err := checkBoundsLayout(da, high); err != nil {
		return nil, fmt.Errorf("high bounds: %w", err)
	}
	if err := checkBoundsLayout(da, low); err != nil {
		return nil, fmt.Errorf("low bounds: %w", err)
	}

	highSeries, err := collectSeries(high, DimDayOfYear)
	if err != nil {
		return nil, err
	}
	lowSeries, err := collectSeries(low, DimDayOfYear)
	if err != nil {
		return nil, err
	}

	// MapSeriesBool walks the non-time combinations in the same row-major
	// order collectSeries walked the non-dayofyear ones, so the k-th data
	// series pairs with the k-th bounds series.
	k := 0
	return da.MapSeriesBool(array.DimTime, func(series []float64) ([]bool, error) {
		hi, lo := highSeries[k], lowSeries[k]
		k++
		out := make([]bool, len(series))
		for i, v := range series {
			d := doys[i] - 1
			out[i] = lo[d] <= v && v <= hi[d]
		}
		return out, nil
	})
}

// checkBoundsLayout verifies bounds look like a climatology of da: leading
// dayofyear, then da's dimensions with time removed.
func checkBoundsLayout(da, bounds *array.DataArray) error {
	dims, shape := bounds.Dims(), bounds.Shape()
	if len(dims) == 0 || dims[0] != DimDayOfYear {
		return fmt.Errorf("leading dimension must be %q, got %v", DimDayOfYear, dims)
	}
	if shape[0] != MaxDayOfYear {
		return fmt.Errorf("%q length is %d, want %d", DimDayOfYear, shape[0], MaxDayOfYear)
	}
	want := make([]string, 0, da.NDim())
	for _, d := range da.Dims() {
		if d != array.DimTime {
			want = append(want, d)
		}
	}
	got := dims[1:]
	if len(got) != len(want) {
		return fmt.Errorf("%w: bounds carry %v, data carries %v", array.ErrShapeMismatch, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: bounds carry %v, data carries %v", array.ErrShapeMismatch, got, want)
		}
		bn, _ := bounds.DimLen(got[i])
		dn, _ := da.DimLen(want[i])
		if bn != dn {
			return fmt.Errorf("%w: dimension %q is %d in bounds, %d in data", array.ErrShapeMismatch, want[i], bn, dn)
		}
	}
	return nil
}

func collectSeries(da *array.DataArray, dim string) ([][]float64, error) {
	var out [][]float64
	err := da.EachSeries(dim, func(_ []int, series []float64) error {
		out = append(out, append([]float64(nil), series...))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
