package units

import (
	"fmt"
	"strconv"
	"strings"

	"goclim/array"
)

// Quantity is a magnitude tagged with a unit, parsed from strings such as
// "-90 degC" or "300 mm d-1".
type Quantity struct {
	Value float64
	Unit  Unit
}

// String renders the quantity the way it is written in thresholds.
func (q Quantity) String() string {
	v := strconv.FormatFloat(q.Value, 'g', -1, 64)
	if q.Unit.symbol == "" {
		return v
	}
	return v + " " + q.Unit.symbol
}

// ParseQuantity splits a threshold string into magnitude and unit. A bare
// number parses as dimensionless.
func ParseQuantity(s string) (Quantity, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Quantity{}, fmt.Errorf("empty quantity")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q has no leading magnitude: %w", s, err)
	}
	u, err := Parse(strings.Join(fields[1:], " "))
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: u}, nil
}

// ConvertTo parses a threshold string and expresses it in the array's
// units, mirroring how unit-tagged thresholds are applied to data: the
// threshold adapts to the data, never the other way around.
func ConvertTo(threshold string, da *array.DataArray) (float64, error) {
	q, err := ParseQuantity(threshold)
	if err != nil {
		return 0, err
	}
	target, err := Parse(da.Units())
	if err != nil {
		return 0, fmt.Errorf("variable %q: %w", da.Name(), err)
	}
	return Convert(q.Value, q.Unit, target)
}

// ConvertArray returns a copy of the array expressed in the target unit,
// with the units attribute updated to the canonical spelling. NaN values
// stay NaN through the affine map.
func ConvertArray(da *array.DataArray, to string) (*array.DataArray, error) {
	target, err := Parse(to)
	if err != nil {
		return nil, err
	}
	source, err := Parse(da.Units())
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", da.Name(), err)
	}
	if source.Dimension() != target.Dimension() {
		return nil, fmt.Errorf("%w: variable %q is %s, not %s",
			ErrIncompatibleUnits, da.Name(), describe(source), describe(target))
	}
	out := da.Copy()
	if source.symbol != target.symbol {
		vals := out.Values()
		for i, v := range vals {
			vals[i] = target.fromBase(source.toBase(v))
		}
	}
	out.SetUnits(target.symbol)
	return out, nil
}
