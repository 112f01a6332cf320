package array

import "fmt"

// axisView precomputes the index arithmetic for walking every 1-d series
// along one axis of a row-major buffer.
type axisView struct {
	axis       int
	n          int   // length along the axis
	axisStride int   // input stride of the axis
	remShape   []int // shape with the axis removed
	remStrides []int // input strides of the remaining dims
	outerSize  int   // number of series
}

func newAxisView(shape []int, axis int) axisView {
	st := strides(shape)
	v := axisView{
		axis:       axis,
		n:          shape[axis],
		axisStride: st[axis],
	}
	for i := range shape {
		if i == axis {
			continue
		}
		v.remShape = append(v.remShape, shape[i])
		v.remStrides = append(v.remStrides, st[i])
	}
	v.outerSize = sizeOf(v.remShape)
	return v
}

// outerIndex decomposes the k-th series into a multi-index over the
// remaining dims, writing into idx (len = len(remShape)).
func (v axisView) outerIndex(k int, idx []int) {
	for i := len(v.remShape) - 1; i >= 0; i-- {
		idx[i] = k % v.remShape[i]
		k /= v.remShape[i]
	}
}

// base returns the buffer offset of the series start for outer index idx.
func (v axisView) base(idx []int) int {
	off := 0
	for i, s := range v.remStrides {
		off += idx[i] * s
	}
	return off
}

// EachSeries calls fn once per 1-d series along dim. outer is the
// multi-index over the remaining dimensions in storage order and series is
// a fresh copy of the values; both are valid only during the call. fn
// errors abort the walk.
func (a *DataArray) EachSeries(dim string, fn func(outer []int, series []float64) error) error {
	axis, err := a.AxisOf(dim)
	if err != nil {
		return err
	}
	v := newAxisView(a.shape, axis)
	idx := make([]int, len(v.remShape))
	series := make([]float64, v.n)
	for k := 0; k < v.outerSize; k++ {
		v.outerIndex(k, idx)
		base := v.base(idx)
		for j := 0; j < v.n; j++ {
			series[j] = a.data[base+j*v.axisStride]
		}
		if err := fn(idx, series); err != nil {
			return err
		}
	}
	return nil
}

// TransformAlong rebuilds the array with dim resized to newLen, applying fn
// to every series. fn receives a copy of the input series and writes exactly
// newLen values into out. dim keeps its storage position; its coordinate is
// replaced by newCoord, or dropped when newCoord is zero. Name, attributes
// and the other coordinates carry over.
func (a *DataArray) TransformAlong(dim string, newLen int, newCoord Coord, fn func(series []float64, out []float64)) (*DataArray, error) {
	axis, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}
	if newLen < 0 {
		return nil, fmt.Errorf("negative length %d for dimension %q", newLen, dim)
	}
	if !newCoord.IsZero() && newCoord.Len() != newLen {
		return nil, fmt.Errorf("%w: coordinate %q has %d ticks for length %d", ErrShapeMismatch, dim, newCoord.Len(), newLen)
	}

	outShape := append([]int(nil), a.shape...)
	outShape[axis] = newLen
	outData := make([]float64, sizeOf(outShape))

	in := newAxisView(a.shape, axis)
	out := newAxisView(outShape, axis)
	idx := make([]int, len(in.remShape))
	series := make([]float64, in.n)
	buf := make([]float64, newLen)
	for k := 0; k < in.outerSize; k++ {
		in.outerIndex(k, idx)
		ibase, obase := in.base(idx), out.base(idx)
		for j := 0; j < in.n; j++ {
			series[j] = a.data[ibase+j*in.axisStride]
		}
		fn(series, buf)
		for j := 0; j < newLen; j++ {
			outData[obase+j*out.axisStride] = buf[j]
		}
	}

	coords := make(map[string]Coord, len(a.coords))
	for d, c := range a.coords {
		if d == dim {
			continue
		}
		coords[d] = c
	}
	if !newCoord.IsZero() {
		coords[dim] = newCoord
	}
	return New(a.name, outData, a.dims, outShape, coords, a.attrs)
}

// MapSeriesBool evaluates fn on every series along dim and assembles the
// per-position results into a boolean array of the same layout. fn must
// return exactly len(series) values. Attributes carry over.
func (a *DataArray) MapSeriesBool(dim string, fn func(series []float64) ([]bool, error)) (*BoolArray, error) {
	axis, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}
	v := newAxisView(a.shape, axis)
	idx := make([]int, len(v.remShape))
	series := make([]float64, v.n)
	outData := make([]bool, len(a.data))
	for k := 0; k < v.outerSize; k++ {
		v.outerIndex(k, idx)
		base := v.base(idx)
		for j := 0; j < v.n; j++ {
			series[j] = a.data[base+j*v.axisStride]
		}
		res, err := fn(series)
		if err != nil {
			return nil, err
		}
		if len(res) != v.n {
			return nil, fmt.Errorf("%w: series function returned %d values for length %d", ErrShapeMismatch, len(res), v.n)
		}
		for j := 0; j < v.n; j++ {
			outData[base+j*v.axisStride] = res[j]
		}
	}
	return NewBool(a.name, outData, a.dims, a.shape, a.attrs)
}

// ReduceAlong collapses dim through fn and exposes the result under a new
// leading dimension. fn maps each series to exactly newCoord.Len() values,
// e.g. fitted parameters or per-return-period quantiles. The remaining
// dimensions keep their relative order and coordinates; name and attributes
// carry over.
func (a *DataArray) ReduceAlong(dim, newDim string, newCoord Coord, fn func(series []float64) []float64) (*DataArray, error) {
	axis, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}
	if newCoord.IsZero() {
		return nil, fmt.Errorf("reduced dimension %q needs a coordinate", newDim)
	}
	if _, ok := axisOf(a.dims, newDim); ok && newDim != dim {
		return nil, fmt.Errorf("duplicate dimension %q", newDim)
	}
	p := newCoord.Len()

	v := newAxisView(a.shape, axis)
	idx := make([]int, len(v.remShape))
	series := make([]float64, v.n)
	outData := make([]float64, p*v.outerSize)
	for k := 0; k < v.outerSize; k++ {
		v.outerIndex(k, idx)
		base := v.base(idx)
		for j := 0; j < v.n; j++ {
			series[j] = a.data[base+j*v.axisStride]
		}
		res := fn(series)
		if len(res) != p {
			return nil, fmt.Errorf("%w: reduce function returned %d values for %d ticks", ErrShapeMismatch, len(res), p)
		}
		// Output is row-major with newDim leading, so series k of value
		// i lands at i*outerSize + k.
		for i := 0; i < p; i++ {
			outData[i*v.outerSize+k] = res[i]
		}
	}

	outDims := append([]string{newDim}, removeAt(a.dims, axis)...)
	outShape := append([]int{p}, removeAt(a.shape, axis)...)
	coords := make(map[string]Coord, len(a.coords))
	for d, c := range a.coords {
		if d == dim {
			continue
		}
		coords[d] = c
	}
	coords[newDim] = newCoord
	return New(a.name, outData, outDims, outShape, coords, a.attrs)
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
