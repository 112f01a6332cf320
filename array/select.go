package array

import (
	"fmt"
	"math"
)

// SelectIndices returns a new array keeping only the given positions along
// dim, in the order given. Repeats are allowed. The dimension's coordinate
// is subset to match.
func (a *DataArray) SelectIndices(dim string, idx []int) (*DataArray, error) {
	n, err := a.DimLen(dim)
	if err != nil {
		return nil, err
	}
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("index %d out of range for dimension %q of length %d", i, dim, n)
		}
	}
	coord := Coord{}
	if c, ok := a.coords[dim]; ok {
		coord = c.subset(idx)
	}
	return a.TransformAlong(dim, len(idx), coord, func(series, out []float64) {
		for i, j := range idx {
			out[i] = series[j]
		}
	})
}

// DropAllNaN removes the positions along dim where every value across the
// other dimensions is NaN. Fully valid or mixed positions are kept.
func (a *DataArray) DropAllNaN(dim string) (*DataArray, error) {
	n, err := a.DimLen(dim)
	if err != nil {
		return nil, err
	}
	valid := make([]bool, n)
	err = a.EachSeries(dim, func(_ []int, series []float64) error {
		for j, v := range series {
			if !math.IsNaN(v) {
				valid[j] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, n)
	for j, ok := range valid {
		if ok {
			keep = append(keep, j)
		}
	}
	return a.SelectIndices(dim, keep)
}
