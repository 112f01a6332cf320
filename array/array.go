package array

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DimTime is the conventional name of the sampling-time dimension.
const DimTime = "time"

// Sentinel errors for structural failures. Callers match with errors.Is.
var (
	// ErrDimNotFound marks operations addressing a dimension the array
	// does not carry.
	ErrDimNotFound = errors.New("dimension not found")

	// ErrShapeMismatch marks elementwise operations between arrays whose
	// dimensions or lengths disagree.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// DataArray is a labeled N-dimensional float64 array. Data is stored
// row-major; the last dimension varies fastest. A zero-dimensional array
// holds exactly one value.
type DataArray struct {
	name   string
	dims   []string
	shape  []int
	data   []float64
	coords map[string]Coord
	attrs  Attrs
}

// New builds a DataArray from a row-major buffer. dims and shape must have
// equal length, dimension names must be unique and non-empty, the buffer
// length must equal the shape product, and every coordinate must belong to
// a named dimension and match its length. All inputs are copied; attrs and
// coords may be nil.
func New(name string, data []float64, dims []string, shape []int, coords map[string]Coord, attrs Attrs) (*DataArray, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("%w: %d dims against %d shape entries", ErrShapeMismatch, len(dims), len(shape))
	}
	seen := make(map[string]bool, len(dims))
	for i, d := range dims {
		if d == "" {
			return nil, fmt.Errorf("dimension %d has an empty name", i)
		}
		if seen[d] {
			return nil, fmt.Errorf("duplicate dimension %q", d)
		}
		seen[d] = true
		if shape[i] < 0 {
			return nil, fmt.Errorf("dimension %q has negative length %d", d, shape[i])
		}
	}
	if n := sizeOf(shape); n != len(data) {
		return nil, fmt.Errorf("%w: shape holds %d values, buffer holds %d", ErrShapeMismatch, n, len(data))
	}
	a := &DataArray{
		name:   name,
		dims:   append([]string(nil), dims...),
		shape:  append([]int(nil), shape...),
		data:   append([]float64(nil), data...),
		coords: make(map[string]Coord, len(coords)),
		attrs:  attrs.Copy(),
	}
	for dim, c := range coords {
		i, ok := axisOf(dims, dim)
		if !ok {
			return nil, fmt.Errorf("%w: coordinate %q has no dimension", ErrDimNotFound, dim)
		}
		if c.Len() != shape[i] {
			return nil, fmt.Errorf("%w: coordinate %q has %d ticks for length %d", ErrShapeMismatch, dim, c.Len(), shape[i])
		}
		a.coords[dim] = c.copy()
	}
	return a, nil
}

// NewScalar builds a zero-dimensional array holding a single value.
func NewScalar(name string, v float64, attrs Attrs) *DataArray {
	return &DataArray{
		name:   name,
		dims:   []string{},
		shape:  []int{},
		data:   []float64{v},
		coords: map[string]Coord{},
		attrs:  attrs.Copy(),
	}
}

// NewSeries builds a one-dimensional array over the time dimension. times
// must match values in length.
func NewSeries(name string, values []float64, times []time.Time, attrs Attrs) (*DataArray, error) {
	return New(name, values, []string{DimTime}, []int{len(values)},
		map[string]Coord{DimTime: TimeCoord(times)}, attrs)
}

// Name returns the array name.
func (a *DataArray) Name() string { return a.name }

// SetName renames the array in place.
func (a *DataArray) SetName(name string) { a.name = name }

// Dims returns a copy of the dimension names in storage order.
func (a *DataArray) Dims() []string { return append([]string(nil), a.dims...) }

// Shape returns a copy of the per-dimension lengths.
func (a *DataArray) Shape() []int { return append([]int(nil), a.shape...) }

// NDim returns the number of dimensions.
func (a *DataArray) NDim() int { return len(a.dims) }

// Size returns the total number of stored values.
func (a *DataArray) Size() int { return len(a.data) }

// Values returns the backing buffer in row-major order. The slice is live:
// writes through it mutate the array.
func (a *DataArray) Values() []float64 { return a.data }

// At returns the value at the given multi-index. The index count must match
// the number of dimensions.
func (a *DataArray) At(idx ...int) float64 {
	if len(idx) != len(a.dims) {
		panic(fmt.Sprintf("array: At called with %d indices on %d dimensions", len(idx), len(a.dims)))
	}
	off := 0
	for i, s := range strides(a.shape) {
		if idx[i] < 0 || idx[i] >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range for dimension %q of length %d", idx[i], a.dims[i], a.shape[i]))
		}
		off += idx[i] * s
	}
	return a.data[off]
}

// Item returns the sole value of a zero-dimensional array.
func (a *DataArray) Item() (float64, error) {
	if len(a.dims) != 0 {
		return 0, fmt.Errorf("%w: Item on a %d-dimensional array", ErrShapeMismatch, len(a.dims))
	}
	return a.data[0], nil
}

// HasDim reports whether the array carries the named dimension.
func (a *DataArray) HasDim(dim string) bool {
	_, ok := axisOf(a.dims, dim)
	return ok
}

// AxisOf returns the storage axis of the named dimension.
func (a *DataArray) AxisOf(dim string) (int, error) {
	i, ok := axisOf(a.dims, dim)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrDimNotFound, dim)
	}
	return i, nil
}

// DimLen returns the length of the named dimension.
func (a *DataArray) DimLen(dim string) (int, error) {
	i, err := a.AxisOf(dim)
	if err != nil {
		return 0, err
	}
	return a.shape[i], nil
}

// Coord returns the coordinate attached to the named dimension, if any.
func (a *DataArray) Coord(dim string) (Coord, bool) {
	c, ok := a.coords[dim]
	return c, ok
}

// TimeCoord returns the timestamps of the time dimension. It fails when the
// array has no time dimension or the dimension carries no time coordinate.
func (a *DataArray) TimeCoord() ([]time.Time, error) {
	c, ok := a.coords[DimTime]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no coordinate", ErrDimNotFound, DimTime)
	}
	return c.Times()
}

// Attrs returns the live attribute map.
func (a *DataArray) Attrs() Attrs { return a.attrs }

// Attr returns one attribute value and whether it was present.
func (a *DataArray) Attr(key string) (string, bool) { return a.attrs.Get(key) }

// SetAttr sets one attribute in place.
func (a *DataArray) SetAttr(key, value string) {
	if a.attrs == nil {
		a.attrs = Attrs{}
	}
	a.attrs[key] = value
}

// Units returns the units attribute, or the empty string when unset.
func (a *DataArray) Units() string { return a.attrs[AttrUnits] }

// SetUnits sets the units attribute in place.
func (a *DataArray) SetUnits(u string) { a.SetAttr(AttrUnits, u) }

// Copy returns a deep copy sharing no state with the receiver.
func (a *DataArray) Copy() *DataArray {
	out := &DataArray{
		name:   a.name,
		dims:   append([]string(nil), a.dims...),
		shape:  append([]int(nil), a.shape...),
		data:   append([]float64(nil), a.data...),
		coords: make(map[string]Coord, len(a.coords)),
		attrs:  a.attrs.Copy(),
	}
	for dim, c := range a.coords {
		out.coords[dim] = c.copy()
	}
	return out
}

// CountValid returns the number of non-NaN values.
func (a *DataArray) CountValid() int {
	n := 0
	for _, v := range a.data {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// sizeOf returns the product of shape entries; the empty shape has size 1.
func sizeOf(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// strides returns row-major strides for shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}
	return st
}

func axisOf(dims []string, dim string) (int, bool) {
	for i, d := range dims {
		if d == dim {
			return i, true
		}
	}
	return 0, false
}

// sameLayout verifies two arrays agree on dimension names, order and lengths.
func sameLayout(a, b *DataArray) error {
	if len(a.dims) != len(b.dims) {
		return fmt.Errorf("%w: %d against %d dimensions", ErrShapeMismatch, len(a.dims), len(b.dims))
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] {
			return fmt.Errorf("%w: dimension %d is %q against %q", ErrShapeMismatch, i, a.dims[i], b.dims[i])
		}
		if a.shape[i] != b.shape[i] {
			return fmt.Errorf("%w: dimension %q has length %d against %d", ErrShapeMismatch, a.dims[i], a.shape[i], b.shape[i])
		}
	}
	return nil
}
