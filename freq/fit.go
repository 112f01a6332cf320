package freq

import (
	"fmt"
	"math"

	"goclim/array"
)

// Dimension names introduced by fitting and frequency analysis.
const (
	// DimDparams indexes a fitted parameter vector: shape parameters
	// first, then loc and scale.
	DimDparams = "dparams"

	// DimReturnPeriod indexes return-period values produced by FA.
	DimReturnPeriod = "return_period"
)

// Attribute keys stamped onto fitted parameter arrays and their derived
// return-period values.
const (
	AttrStandardName  = "standard_name"
	AttrOriginalName  = "original_name"
	AttrOriginalUnits = "original_units"
	AttrEstimator     = "estimator"
	AttrDist          = "dist"
)

// Fit estimates distribution parameters along the time dimension by
// maximum likelihood, one fit per series. NaN values are dropped before
// fitting; a series with fewer than two valid points, or whose fit
// produces any NaN, yields an all-NaN parameter vector. The result
// replaces time with a leading dparams dimension labeled with the
// parameter names, and records the provenance of the fit in its
// attributes.
func Fit(da *array.DataArray, distName string) (*array.DataArray, error) {
	d, err := GetDist(distName)
	if err != nil {
		return nil, err
	}

	var buf []float64
	out, err := da.ReduceAlong(array.DimTime, DimDparams, array.LabelCoord(d.ParamNames()),
		func(series []float64) []float64 {
			buf = dropNaN(series, buf)
			if len(buf) <= 1 {
				return nanVector(d.NumParams())
			}
			params := d.Fit(buf)
			for _, p := range params {
				if math.IsNaN(p) {
					return nanVector(d.NumParams())
				}
			}
			return params
		})
	if err != nil {
		return nil, err
	}

	stdName := out.Attrs()[AttrStandardName]
	out.SetAttr(AttrOriginalName, stdName)
	out.SetAttr(array.AttrDescription,
		fmt.Sprintf("Parameters of the %s distribution fitted over %s", distName, stdName))
	out.SetAttr(AttrEstimator, "Maximum likelihood")
	out.SetAttr(AttrDist, distName)
	out.SetAttr(AttrOriginalUnits, da.Units())
	out.SetUnits("")
	return out, nil
}
