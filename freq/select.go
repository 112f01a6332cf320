package freq

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"goclim/array"
	"goclim/calendar"
)

// SelectTime subsets an array along time. With no indexer the array comes
// back unchanged. With one indexer, time steps matching it are kept and
// all-missing time slices are dropped afterwards. Several indexers at once
// are rejected rather than silently reduced to one.
func SelectTime(da *array.DataArray, indexers ...TimeIndexer) (*array.DataArray, error) {
	switch len(indexers) {
	case 0:
		return da, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: got %d indexers, want at most one", ErrUnsupportedIndexer, len(indexers))
	}
	idxr := indexers[0]

	times, err := da.TimeCoord()
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, len(times))
	for i, t := range times {
		if idxr.Matches(t) {
			keep = append(keep, i)
		}
	}
	sel, err := da.SelectIndices(array.DimTime, keep)
	if err != nil {
		return nil, err
	}
	return sel.DropAllNaN(array.DimTime)
}

// ResampleOp reduces the values of one resampling period to a single
// number. The built-in operators skip NaN values the way the resampling
// conventions expect; Op builds custom operators.
type ResampleOp struct {
	name string
	fn   func(values []float64, times []time.Time) float64
}

// Op wraps a custom reduction under a name used in error messages and
// provenance attributes.
func Op(name string, fn func(values []float64, times []time.Time) float64) ResampleOp {
	return ResampleOp{name: name, fn: fn}
}

// Name returns the operator name.
func (op ResampleOp) Name() string { return op.name }

// dropNaN filters NaN values out, reusing dst.
func dropNaN(values []float64, dst []float64) []float64 {
	dst = dst[:0]
	for _, v := range values {
		if !math.IsNaN(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// Built-in period reductions. Min, max, mean, std and var skip NaN and
// yield NaN for all-NaN periods; sum yields 0 and count 0 for those.
// ArgMax and ArgMin yield the position of the extremum within the period.
var (
	OpMin = Op("min", func(values []float64, _ []time.Time) float64 {
		valid := dropNaN(values, nil)
		if len(valid) == 0 {
			return math.NaN()
		}
		return floats.Min(valid)
	})
	OpMax = Op("max", func(values []float64, _ []time.Time) float64 {
		valid := dropNaN(values, nil)
		if len(valid) == 0 {
			return math.NaN()
		}
		return floats.Max(valid)
	})
	OpMean = Op("mean", func(values []float64, _ []time.Time) float64 {
		valid := dropNaN(values, nil)
		if len(valid) == 0 {
			return math.NaN()
		}
		return stat.Mean(valid, nil)
	})
	OpStd = Op("std", func(values []float64, _ []time.Time) float64 {
		valid := dropNaN(values, nil)
		if len(valid) == 0 {
			return math.NaN()
		}
		return stat.PopStdDev(valid, nil)
	})
	OpVar = Op("var", func(values []float64, _ []time.Time) float64 {
		valid := dropNaN(values, nil)
		if len(valid) == 0 {
			return math.NaN()
		}
		return stat.PopVariance(valid, nil)
	})
	OpSum = Op("sum", func(values []float64, _ []time.Time) float64 {
		return floats.Sum(dropNaN(values, nil))
	})
	OpCount = Op("count", func(values []float64, _ []time.Time) float64 {
		return float64(len(dropNaN(values, nil)))
	})
	OpArgMax = Op("argmax", func(values []float64, _ []time.Time) float64 {
		i := extremumIndex(values, func(v, best float64) bool { return v > best })
		if i < 0 {
			return math.NaN()
		}
		return float64(i)
	})
	OpArgMin = Op("argmin", func(values []float64, _ []time.Time) float64 {
		i := extremumIndex(values, func(v, best float64) bool { return v < best })
		if i < 0 {
			return math.NaN()
		}
		return float64(i)
	})
)

// extremumIndex returns the position of the best non-NaN value, or -1 when
// every value is NaN. Ties keep the earliest position.
func extremumIndex(values []float64, better func(v, best float64) bool) int {
	best := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || better(v, values[best]) {
			best = i
		}
	}
	return best
}

// SelectResampleOp selects time steps, buckets them into f periods, and
// reduces each period with op. The result's time coordinate holds the
// period starts; attributes carry over.
func SelectResampleOp(da *array.DataArray, op ResampleOp, f calendar.Freq, indexers ...TimeIndexer) (*array.DataArray, error) {
	sel, err := SelectTime(da, indexers...)
	if err != nil {
		return nil, err
	}
	return sel.GroupByTime(f.PeriodStart, op.fn)
}

// DOYMax returns the day of year of each series' maximum, collapsing the
// time dimension. NaN values are skipped; an all-NaN series yields NaN.
func DOYMax(da *array.DataArray) (*array.DataArray, error) {
	return doyOfExtremum(da, func(v, best float64) bool { return v > best })
}

// DOYMin returns the day of year of each series' minimum, collapsing the
// time dimension. NaN values are skipped; an all-NaN series yields NaN.
func DOYMin(da *array.DataArray) (*array.DataArray, error) {
	return doyOfExtremum(da, func(v, best float64) bool { return v < best })
}

func doyOfExtremum(da *array.DataArray, better func(v, best float64) bool) (*array.DataArray, error) {
	times, err := da.TimeCoord()
	if err != nil {
		return nil, err
	}
	out, err := reduceTimeAway(da, func(series []float64) float64 {
		i := extremumIndex(series, better)
		if i < 0 {
			return math.NaN()
		}
		return float64(calendar.DayOfYear(times[i]))
	})
	if err != nil {
		return nil, err
	}
	out.SetUnits("")
	return out, nil
}

// reduceTimeAway collapses the time dimension entirely, one value per
// series. Remaining dimensions, their coordinates and the attributes carry
// over; a 1-d input collapses to a scalar.
func reduceTimeAway(da *array.DataArray, fn func(series []float64) float64) (*array.DataArray, error) {
	dims, shape := da.Dims(), da.Shape()
	axis, err := da.AxisOf(array.DimTime)
	if err != nil {
		return nil, err
	}
	outDims := make([]string, 0, len(dims)-1)
	outShape := make([]int, 0, len(dims)-1)
	coords := make(map[string]array.Coord)
	for i, d := range dims {
		if i == axis {
			continue
		}
		outDims = append(outDims, d)
		outShape = append(outShape, shape[i])
		if c, ok := da.Coord(d); ok {
			coords[d] = c
		}
	}

	// EachSeries walks outer combinations in row-major order over the
	// remaining dimensions, which is exactly the output's storage order.
	data := make([]float64, 0, sizeOfShape(outShape))
	err = da.EachSeries(array.DimTime, func(_ []int, series []float64) error {
		data = append(data, fn(series))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return array.New(da.Name(), data, outDims, outShape, coords, da.Attrs())
}

func sizeOfShape(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
