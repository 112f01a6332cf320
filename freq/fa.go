package freq

import (
	"fmt"
	"strings"

	"goclim/array"
	"goclim/calendar"
)

// modeOp maps an extreme-value mode onto its period reduction. Max and
// high ask for the probability of exceedance, min and low for
// non-exceedance.
func modeOp(mode string) (ResampleOp, error) {
	switch mode {
	case "max", "high":
		return OpMax, nil
	case "min", "low":
		return OpMin, nil
	}
	return ResampleOp{}, fmt.Errorf("%w: %q should be either 'max' or 'min'", ErrInvalidMode, mode)
}

// modeInverse picks the matching tail inversion: the inverse survival
// function for exceedance modes, the plain quantile otherwise.
func modeInverse(d Distribution, mode string) (func(q float64, params []float64) float64, error) {
	switch mode {
	case "max", "high":
		return d.InverseSurvival, nil
	case "min", "low":
		return d.Quantile, nil
	}
	return nil, fmt.Errorf("%w: %q should be either 'max' or 'min'", ErrInvalidMode, mode)
}

// FA computes the values matching the given return periods from fitted
// distribution parameters. p is a parameter array as produced by [Fit],
// carrying a dparams dimension sized for distName. For mode max or high
// each value is exceeded with probability 1/t; for min or low it is
// undercut with probability 1/t. The result replaces dparams with a
// leading return_period dimension and restores the fitted variable's
// units.
func FA(p *array.DataArray, t []float64, distName, mode string) (*array.DataArray, error) {
	d, err := GetDist(distName)
	if err != nil {
		return nil, err
	}
	n, err := p.DimLen(DimDparams)
	if err != nil {
		return nil, fmt.Errorf("parameter array: %w", err)
	}
	if n != d.NumParams() {
		return nil, fmt.Errorf("%w: %d parameters for %s, want %d",
			array.ErrShapeMismatch, n, distName, d.NumParams())
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("no return periods given")
	}

	inv, err := modeInverse(d, mode)
	if err != nil {
		return nil, err
	}

	out, err := p.ReduceAlong(DimDparams, DimReturnPeriod, array.ValueCoord(t),
		func(params []float64) []float64 {
			vals := make([]float64, len(t))
			for i, ti := range t {
				vals[i] = inv(1/ti, params)
			}
			return vals
		})
	if err != nil {
		return nil, err
	}

	attrs := out.Attrs()
	out.SetAttr(AttrStandardName, distName+" quantiles")
	out.SetAttr(array.AttrLongName,
		fmt.Sprintf("%s return period values for %s", distName, attrs[AttrOriginalName]))
	out.SetAttr(array.AttrCellMethods,
		strings.TrimSpace(attrs[array.AttrCellMethods]+" dparams: ppf"))
	out.SetAttr(array.AttrUnits, attrs[AttrOriginalUnits])
	out.SetAttr(array.AttrMode, mode)
	out.SetAttr(array.AttrHistory,
		attrs[array.AttrHistory]+"Compute values corresponding to return periods.")
	return out, nil
}

// DefaultFreq infers the resampling frequency from the time indexers: a
// year starting in January, or in December when a DJF season indexer is
// present so winters are not split across period edges. Month indexers
// must list months in ascending order; other orderings are rejected
// because the inferred yearly period cannot express them.
func DefaultFreq(indexers ...TimeIndexer) (calendar.Freq, error) {
	f := calendar.MustFreq("YS-JAN")
	for _, idxr := range indexers {
		switch v := idxr.(type) {
		case seasonIndexer:
			if string(v) == calendar.SeasonDJF {
				f = calendar.MustFreq("YS-DEC")
			}
		case monthIndexer:
			if !v.ascending() {
				return calendar.Freq{}, fmt.Errorf("%w: %s is not in ascending order", ErrUnsupportedIndexer, v)
			}
		}
	}
	return f, nil
}

// FrequencyAnalysis runs the whole return-period pipeline: optional
// trailing window smoothing, selection by time indexer, per-period
// extremum matching mode, then Fit and FA. An empty freq infers the
// frequency via [DefaultFreq]; window values of one or less leave the
// series unsmoothed.
func FrequencyAnalysis(da *array.DataArray, mode string, t []float64, distName string, window int, freq string, indexers ...TimeIndexer) (*array.DataArray, error) {
	op, err := modeOp(mode)
	if err != nil {
		return nil, err
	}

	if window > 1 {
		sm, err := da.RollingMean(array.DimTime, window)
		if err != nil {
			return nil, err
		}
		da = sm
	}

	var f calendar.Freq
	if freq == "" {
		f, err = DefaultFreq(indexers...)
	} else {
		f, err = calendar.ParseFreq(freq)
	}
	if err != nil {
		return nil, err
	}

	sel, err := SelectResampleOp(da, op, f, indexers...)
	if err != nil {
		return nil, err
	}
	params, err := Fit(sel, distName)
	if err != nil {
		return nil, err
	}
	return FA(params, t, distName, mode)
}
