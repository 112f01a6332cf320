package dataflags

import (
	"fmt"

	"goclim/array"
	"goclim/units"
)

// Default thresholds applied when a temperature check is called with an
// empty thresh.
const (
	DefaultExtremelyLowThresh  = "-90 degC"
	DefaultExtremelyHighThresh = "60 degC"
)

// requireDim verifies the variable's units belong to the expected physical
// dimension before a check compares its values.
func requireDim(da *array.DataArray, want units.Dimension) error {
	u, err := units.Parse(da.Units())
	if err != nil {
		return fmt.Errorf("variable %q: %w", da.Name(), err)
	}
	if u.Dimension() != want {
		return fmt.Errorf("%w: variable %q carries %s units, want %s",
			units.ErrIncompatibleUnits, da.Name(), u.Dimension(), want)
	}
	return nil
}

// annotated collapses a mask to its Any scalar and stamps the comment that
// describes what was flagged.
func annotated(mask *array.BoolArray, comment string) *array.BoolArray {
	flag := mask.Any()
	flag.SetAttr(array.AttrComment, comment)
	return flag
}

// TasmaxBelowTasmin flags days whose maximum temperature sits below the
// minimum temperature. tasmin is converted to tasmax's units before the
// comparison.
func TasmaxBelowTasmin(tasmax, tasmin *array.DataArray) (*array.BoolArray, error) {
	if err := requireDim(tasmax, units.Temperature); err != nil {
		return nil, err
	}
	minC, err := units.ConvertArray(tasmin, tasmax.Units())
	if err != nil {
		return nil, err
	}
	mask, err := tasmax.LtArray(minC)
	if err != nil {
		return nil, err
	}
	return annotated(mask, "Maximum temperature values found below minimum temperatures"), nil
}

// TasExceedsTasmax flags days whose mean temperature exceeds the maximum
// temperature. tasmax is converted to tas's units before the comparison.
func TasExceedsTasmax(tas, tasmax *array.DataArray) (*array.BoolArray, error) {
	if err := requireDim(tas, units.Temperature); err != nil {
		return nil, err
	}
	maxC, err := units.ConvertArray(tasmax, tas.Units())
	if err != nil {
		return nil, err
	}
	mask, err := tas.GtArray(maxC)
	if err != nil {
		return nil, err
	}
	return annotated(mask, "Mean temperature values found above maximum temperatures"), nil
}

// TasBelowTasmin flags days whose mean temperature sits below the minimum
// temperature. tasmin is converted to tas's units before the comparison.
func TasBelowTasmin(tas, tasmin *array.DataArray) (*array.BoolArray, error) {
	if err := requireDim(tas, units.Temperature); err != nil {
		return nil, err
	}
	minC, err := units.ConvertArray(tasmin, tas.Units())
	if err != nil {
		return nil, err
	}
	mask, err := tas.LtArray(minC)
	if err != nil {
		return nil, err
	}
	return annotated(mask, "Mean temperature values found below minimum temperatures"), nil
}

// TemperatureExtremelyLow flags temperatures below thresh, a unit-tagged
// string such as "-90 degC" converted to the variable's units before the
// comparison. An empty thresh applies [DefaultExtremelyLowThresh].
func TemperatureExtremelyLow(da *array.DataArray, thresh string) (*array.BoolArray, error) {
	if thresh == "" {
		thresh = DefaultExtremelyLowThresh
	}
	if err := requireDim(da, units.Temperature); err != nil {
		return nil, err
	}
	limit, err := units.ConvertTo(thresh, da)
	if err != nil {
		return nil, err
	}
	comment := fmt.Sprintf("Temperatures found below %g %s", limit, da.Units())
	return annotated(da.Lt(limit), comment), nil
}

// TemperatureExtremelyHigh flags temperatures above thresh, a unit-tagged
// string such as "60 degC" converted to the variable's units before the
// comparison. An empty thresh applies [DefaultExtremelyHighThresh].
func TemperatureExtremelyHigh(da *array.DataArray, thresh string) (*array.BoolArray, error) {
	if thresh == "" {
		thresh = DefaultExtremelyHighThresh
	}
	if err := requireDim(da, units.Temperature); err != nil {
		return nil, err
	}
	limit, err := units.ConvertTo(thresh, da)
	if err != nil {
		return nil, err
	}
	comment := fmt.Sprintf("Temperatures found in excess of %g %s", limit, da.Units())
	return annotated(da.Gt(limit), comment), nil
}
