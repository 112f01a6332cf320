package array

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// compareScalar applies pred against a fixed threshold. NaN values are not
// comparable and always yield false.
func (a *DataArray) compareScalar(pred func(v float64) bool) *BoolArray {
	data := make([]bool, len(a.data))
	for i, v := range a.data {
		if math.IsNaN(v) {
			continue
		}
		data[i] = pred(v)
	}
	out, _ := NewBool(a.name, data, a.dims, a.shape, a.attrs)
	return out
}

// Lt returns an elementwise v < threshold mask. NaN compares false.
func (a *DataArray) Lt(threshold float64) *BoolArray {
	return a.compareScalar(func(v float64) bool { return v < threshold })
}

// Le returns an elementwise v <= threshold mask. NaN compares false.
func (a *DataArray) Le(threshold float64) *BoolArray {
	return a.compareScalar(func(v float64) bool { return v <= threshold })
}

// Gt returns an elementwise v > threshold mask. NaN compares false.
func (a *DataArray) Gt(threshold float64) *BoolArray {
	return a.compareScalar(func(v float64) bool { return v > threshold })
}

// Ge returns an elementwise v >= threshold mask. NaN compares false.
func (a *DataArray) Ge(threshold float64) *BoolArray {
	return a.compareScalar(func(v float64) bool { return v >= threshold })
}

// Eq returns an elementwise v == threshold mask under exact float equality.
// NaN compares false.
func (a *DataArray) Eq(threshold float64) *BoolArray {
	return a.compareScalar(func(v float64) bool { return v == threshold })
}

// compareArray applies pred pairwise against another array of identical
// layout. A NaN on either side yields false.
func (a *DataArray) compareArray(b *DataArray, pred func(x, y float64) bool) (*BoolArray, error) {
	if err := sameLayout(a, b); err != nil {
		return nil, err
	}
	data := make([]bool, len(a.data))
	for i := range a.data {
		x, y := a.data[i], b.data[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		data[i] = pred(x, y)
	}
	return NewBool(a.name, data, a.dims, a.shape, a.attrs)
}

// LtArray returns an elementwise a < b mask. NaN on either side compares false.
func (a *DataArray) LtArray(b *DataArray) (*BoolArray, error) {
	return a.compareArray(b, func(x, y float64) bool { return x < y })
}

// GtArray returns an elementwise a > b mask. NaN on either side compares false.
func (a *DataArray) GtArray(b *DataArray) (*BoolArray, error) {
	return a.compareArray(b, func(x, y float64) bool { return x > y })
}

// GeArray returns an elementwise a >= b mask. NaN on either side compares false.
func (a *DataArray) GeArray(b *DataArray) (*BoolArray, error) {
	return a.compareArray(b, func(x, y float64) bool { return x >= y })
}

// LeArray returns an elementwise a <= b mask. NaN on either side compares false.
func (a *DataArray) LeArray(b *DataArray) (*BoolArray, error) {
	return a.compareArray(b, func(x, y float64) bool { return x <= y })
}

// Add returns the elementwise sum of two arrays with identical layout.
// Coordinates and attributes come from the receiver; NaN propagates.
func (a *DataArray) Add(b *DataArray) (*DataArray, error) {
	if err := sameLayout(a, b); err != nil {
		return nil, err
	}
	out := a.Copy()
	floats.Add(out.data, b.data)
	return out, nil
}

// Sub returns the elementwise difference a - b of two arrays with identical
// layout. Coordinates and attributes come from the receiver; NaN propagates.
func (a *DataArray) Sub(b *DataArray) (*DataArray, error) {
	if err := sameLayout(a, b); err != nil {
		return nil, err
	}
	out := a.Copy()
	floats.Sub(out.data, b.data)
	return out, nil
}

// AddScalar returns a copy with c added to every value. NaN propagates.
func (a *DataArray) AddScalar(c float64) *DataArray {
	out := a.Copy()
	floats.AddConst(c, out.data)
	return out
}

// MulScalar returns a copy with every value scaled by c. NaN propagates.
func (a *DataArray) MulScalar(c float64) *DataArray {
	out := a.Copy()
	floats.Scale(c, out.data)
	return out
}
