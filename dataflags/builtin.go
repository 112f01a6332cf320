package dataflags

import (
	"goclim/array"
	"goclim/units"
)

// defaultRegistry backs Evaluate when no WithRegistry option is given.
var defaultRegistry = BuiltinRegistry()

// BuiltinRegistry builds a fresh registry holding the eleven built-in
// quality control checks. Every call returns an independent registry, so
// callers can Register replacements without affecting anyone else.
func BuiltinRegistry() *Registry {
	return NewRegistry(
		&Check{
			Name:    "tasmax_below_tasmin",
			Primary: units.Temperature,
			Needs:   []Need{{Name: "tasmin", Dim: units.Temperature}},
			Run: func(da *array.DataArray, extras map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return TasmaxBelowTasmin(da, extras["tasmin"])
			},
		},
		&Check{
			Name:    "tas_exceeds_tasmax",
			Primary: units.Temperature,
			Needs:   []Need{{Name: "tasmax", Dim: units.Temperature}},
			Run: func(da *array.DataArray, extras map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return TasExceedsTasmax(da, extras["tasmax"])
			},
		},
		&Check{
			Name:    "tas_below_tasmin",
			Primary: units.Temperature,
			Needs:   []Need{{Name: "tasmin", Dim: units.Temperature}},
			Run: func(da *array.DataArray, extras map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return TasBelowTasmin(da, extras["tasmin"])
			},
		},
		&Check{
			Name:    "temperature_extremely_low",
			Primary: units.Temperature,
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, kwargs map[string]any) (*array.BoolArray, error) {
				thresh, err := kwString(kwargs, "thresh", DefaultExtremelyLowThresh)
				if err != nil {
					return nil, err
				}
				return TemperatureExtremelyLow(da, thresh)
			},
		},
		&Check{
			Name:    "temperature_extremely_high",
			Primary: units.Temperature,
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, kwargs map[string]any) (*array.BoolArray, error) {
				thresh, err := kwString(kwargs, "thresh", DefaultExtremelyHighThresh)
				if err != nil {
					return nil, err
				}
				return TemperatureExtremelyHigh(da, thresh)
			},
		},
		&Check{
			Name:    "negative_precipitation_values",
			Primary: units.PrecipitationRate,
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return NegativePrecipitationValues(da)
			},
		},
		&Check{
			Name:    "very_large_precipitation_events",
			Primary: units.PrecipitationRate,
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, kwargs map[string]any) (*array.BoolArray, error) {
				thresh, err := kwString(kwargs, "thresh", DefaultVeryLargePrecipThresh)
				if err != nil {
					return nil, err
				}
				return VeryLargePrecipitationEvents(da, thresh)
			},
		},
		&Check{
			Name:    "many_1mm_repetitions",
			Primary: units.PrecipitationRate,
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return Many1mmRepetitions(da)
			},
		},
		&Check{
			Name:    "many_5mm_repetitions",
			Primary: units.PrecipitationRate,
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return Many5mmRepetitions(da)
			},
		},
		&Check{
			Name: "outside_n_standard_deviations_of_climatology",
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, kwargs map[string]any) (*array.BoolArray, error) {
				window, err := kwInt(kwargs, "window", DefaultClimatologyWindow)
				if err != nil {
					return nil, err
				}
				n, err := kwFloat(kwargs, "n", DefaultClimatologySigmas)
				if err != nil {
					return nil, err
				}
				return OutsideNStandardDeviationsOfClimatology(da, window, n)
			},
		},
		&Check{
			Name: "values_repeating_for_5_or_more_days",
			Run: func(da *array.DataArray, _ map[string]*array.DataArray, _ map[string]any) (*array.BoolArray, error) {
				return ValuesRepeatingFor5OrMoreDays(da)
			},
		},
	)
}
