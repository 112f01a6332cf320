package array

import "fmt"

// BoolArray is a labeled N-dimensional boolean array produced by
// comparisons and quality checks. It mirrors the layout rules of
// [DataArray] but has no coordinates beyond dimension names.
type BoolArray struct {
	name  string
	dims  []string
	shape []int
	data  []bool
	attrs Attrs
}

// NewBool builds a BoolArray from a row-major buffer under the same layout
// rules as [New].
func NewBool(name string, data []bool, dims []string, shape []int, attrs Attrs) (*BoolArray, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("%w: %d dims against %d shape entries", ErrShapeMismatch, len(dims), len(shape))
	}
	if n := sizeOf(shape); n != len(data) {
		return nil, fmt.Errorf("%w: shape holds %d values, buffer holds %d", ErrShapeMismatch, n, len(data))
	}
	return &BoolArray{
		name:  name,
		dims:  append([]string(nil), dims...),
		shape: append([]int(nil), shape...),
		data:  append([]bool(nil), data...),
		attrs: attrs.Copy(),
	}, nil
}

// NewBoolScalar builds a zero-dimensional boolean array.
func NewBoolScalar(name string, v bool, attrs Attrs) *BoolArray {
	return &BoolArray{
		name:  name,
		dims:  []string{},
		shape: []int{},
		data:  []bool{v},
		attrs: attrs.Copy(),
	}
}

// Name returns the array name.
func (b *BoolArray) Name() string { return b.name }

// SetName renames the array in place.
func (b *BoolArray) SetName(name string) { b.name = name }

// Dims returns a copy of the dimension names in storage order.
func (b *BoolArray) Dims() []string { return append([]string(nil), b.dims...) }

// Shape returns a copy of the per-dimension lengths.
func (b *BoolArray) Shape() []int { return append([]int(nil), b.shape...) }

// NDim returns the number of dimensions.
func (b *BoolArray) NDim() int { return len(b.dims) }

// Size returns the total number of stored values.
func (b *BoolArray) Size() int { return len(b.data) }

// Values returns the backing buffer in row-major order. The slice is live.
func (b *BoolArray) Values() []bool { return b.data }

// Attrs returns the live attribute map.
func (b *BoolArray) Attrs() Attrs { return b.attrs }

// Attr returns one attribute value and whether it was present.
func (b *BoolArray) Attr(key string) (string, bool) { return b.attrs.Get(key) }

// SetAttr sets one attribute in place.
func (b *BoolArray) SetAttr(key, value string) {
	if b.attrs == nil {
		b.attrs = Attrs{}
	}
	b.attrs[key] = value
}

// Item returns the sole value of a zero-dimensional array.
func (b *BoolArray) Item() (bool, error) {
	if len(b.dims) != 0 {
		return false, fmt.Errorf("%w: Item on a %d-dimensional array", ErrShapeMismatch, len(b.dims))
	}
	return b.data[0], nil
}

// Any collapses the array to a scalar that is true when at least one value
// is true. Attributes carry over; an empty array collapses to false.
func (b *BoolArray) Any() *BoolArray {
	out := false
	for _, v := range b.data {
		if v {
			out = true
			break
		}
	}
	s := NewBoolScalar(b.name, out, b.attrs)
	return s
}

// All collapses the array to a scalar that is true when every value is
// true. Attributes carry over; an empty array collapses to true.
func (b *BoolArray) All() *BoolArray {
	out := true
	for _, v := range b.data {
		if !v {
			out = false
			break
		}
	}
	s := NewBoolScalar(b.name, out, b.attrs)
	return s
}

// Not returns the elementwise negation, attributes carried over.
func (b *BoolArray) Not() *BoolArray {
	data := make([]bool, len(b.data))
	for i, v := range b.data {
		data[i] = !v
	}
	out, _ := NewBool(b.name, data, b.dims, b.shape, b.attrs)
	return out
}

// Or returns the elementwise disjunction of two arrays with identical
// layout. Attributes come from the receiver.
func (b *BoolArray) Or(other *BoolArray) (*BoolArray, error) {
	if err := sameBoolLayout(b, other); err != nil {
		return nil, err
	}
	data := make([]bool, len(b.data))
	for i := range b.data {
		data[i] = b.data[i] || other.data[i]
	}
	return NewBool(b.name, data, b.dims, b.shape, b.attrs)
}

// And returns the elementwise conjunction of two arrays with identical
// layout. Attributes come from the receiver.
func (b *BoolArray) And(other *BoolArray) (*BoolArray, error) {
	if err := sameBoolLayout(b, other); err != nil {
		return nil, err
	}
	data := make([]bool, len(b.data))
	for i := range b.data {
		data[i] = b.data[i] && other.data[i]
	}
	return NewBool(b.name, data, b.dims, b.shape, b.attrs)
}

// TrueCount returns the number of true values.
func (b *BoolArray) TrueCount() int {
	n := 0
	for _, v := range b.data {
		if v {
			n++
		}
	}
	return n
}

func sameBoolLayout(a, b *BoolArray) error {
	if len(a.dims) != len(b.dims) {
		return fmt.Errorf("%w: %d against %d dimensions", ErrShapeMismatch, len(a.dims), len(b.dims))
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] || a.shape[i] != b.shape[i] {
			return fmt.Errorf("%w: dimension %d differs", ErrShapeMismatch, i)
		}
	}
	return nil
}
