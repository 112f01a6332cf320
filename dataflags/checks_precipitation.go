package dataflags

import (
	"fmt"

	"goclim/array"
	"goclim/runlength"
	"goclim/units"
)

// DefaultVeryLargePrecipThresh is applied when VeryLargePrecipitationEvents
// is called with an empty thresh.
const DefaultVeryLargePrecipThresh = "300 mm d-1"

// NegativePrecipitationValues flags any negative precipitation rate.
func NegativePrecipitationValues(pr *array.DataArray) (*array.BoolArray, error) {
	if err := requireDim(pr, units.PrecipitationRate); err != nil {
		return nil, err
	}
	return annotated(pr.Lt(0), "Negative values found for precipitation"), nil
}

// VeryLargePrecipitationEvents flags precipitation rates above thresh, a
// unit-tagged string converted to the variable's units before the
// comparison. An empty thresh applies [DefaultVeryLargePrecipThresh].
func VeryLargePrecipitationEvents(pr *array.DataArray, thresh string) (*array.BoolArray, error) {
	if thresh == "" {
		thresh = DefaultVeryLargePrecipThresh
	}
	if err := requireDim(pr, units.PrecipitationRate); err != nil {
		return nil, err
	}
	limit, err := units.ConvertTo(thresh, pr)
	if err != nil {
		return nil, err
	}
	comment := fmt.Sprintf("Precipitation events in excess of %g %s", limit, pr.Units())
	return annotated(pr.Gt(limit), comment), nil
}

// repetitionsAt flags runs of at least window consecutive values exactly
// equal to thresh after conversion to the variable's units. Equality is
// exact; thresholds written in the data's own units compare bit for bit.
func repetitionsAt(pr *array.DataArray, thresh string, window int, comment string) (*array.BoolArray, error) {
	if err := requireDim(pr, units.PrecipitationRate); err != nil {
		return nil, err
	}
	limit, err := units.ConvertTo(thresh, pr)
	if err != nil {
		return nil, err
	}
	mask, err := runlength.SuspiciousRun(pr, window, runlength.OpEqual, limit)
	if err != nil {
		return nil, err
	}
	return annotated(mask, comment), nil
}

// Many1mmRepetitions flags ten or more consecutive days of precipitation
// pinned at exactly 1 mm d-1, a tipping-bucket artifact.
func Many1mmRepetitions(pr *array.DataArray) (*array.BoolArray, error) {
	return repetitionsAt(pr, "1 mm d-1", 10, "Repetitive precipitation values at 1mm")
}

// Many5mmRepetitions flags five or more consecutive days of precipitation
// pinned at exactly 5 mm d-1.
func Many5mmRepetitions(pr *array.DataArray) (*array.BoolArray, error) {
	return repetitionsAt(pr, "5 mm d-1", 5, "Repetitive precipitation values at 5mm")
}
