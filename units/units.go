// Package units implements the small unit grammar the quality checks and
// frequency helpers need: temperatures, precipitation rates, and
// dimensionless values.
//
// Every unit maps affinely onto a per-dimension base (kelvin for
// temperature, kg m-2 s-1 for precipitation rate), so conversion is
// base(v) on one side and the inverse on the other. Cross-dimension
// conversion fails with [ErrIncompatibleUnits]. This is intentionally not
// a general quantity system; unrecognized spellings fail with
// [ErrUnknownUnit] rather than being guessed at.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrUnknownUnit marks a unit spelling outside the supported grammar.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleUnits marks a conversion between different dimensions.
	ErrIncompatibleUnits = errors.New("incompatible units")
)

// Dimension identifies the physical kind of a unit. Units convert only
// within their dimension.
type Dimension string

const (
	Temperature       Dimension = "[temperature]"
	PrecipitationRate Dimension = "[precipitation]"
	Dimensionless     Dimension = "[]"
)

// Unit is one recognized unit, obtained from [Parse].
type Unit struct {
	symbol string
	dim    Dimension
	scale  float64
	offset float64
}

// String returns the canonical spelling.
func (u Unit) String() string { return u.symbol }

// Dimension returns the unit's physical dimension.
func (u Unit) Dimension() Dimension {
	if u.dim == "" {
		return Dimensionless
	}
	return u.dim
}

// toBase converts a value in u to the dimension's base unit.
func (u Unit) toBase(v float64) float64 { return v*u.scale + u.offset }

// fromBase converts a base-unit value into u.
func (u Unit) fromBase(v float64) float64 { return (v - u.offset) / u.scale }

const secondsPerDay = 86400.0

// unitTable maps accepted spellings to their definition. Aliases share one
// definition; canonical spellings are listed first.
var unitTable = map[string]Unit{
	// Temperature, base kelvin.
	"K":          {symbol: "K", dim: Temperature, scale: 1},
	"kelvin":     {symbol: "K", dim: Temperature, scale: 1},
	"degC":       {symbol: "degC", dim: Temperature, scale: 1, offset: 273.15},
	"celsius":    {symbol: "degC", dim: Temperature, scale: 1, offset: 273.15},
	"degF":       {symbol: "degF", dim: Temperature, scale: 5.0 / 9.0, offset: 273.15 - 32.0*5.0/9.0},
	"fahrenheit": {symbol: "degF", dim: Temperature, scale: 5.0 / 9.0, offset: 273.15 - 32.0*5.0/9.0},

	// Precipitation rate, base kg m-2 s-1. Liquid water equivalence:
	// 1 mm of depth over 1 m2 weighs 1 kg.
	"kg m-2 s-1": {symbol: "kg m-2 s-1", dim: PrecipitationRate, scale: 1},
	"kg/m2/s":    {symbol: "kg m-2 s-1", dim: PrecipitationRate, scale: 1},
	"mm d-1":     {symbol: "mm d-1", dim: PrecipitationRate, scale: 1 / secondsPerDay},
	"mm/d":       {symbol: "mm d-1", dim: PrecipitationRate, scale: 1 / secondsPerDay},
	"mm/day":     {symbol: "mm d-1", dim: PrecipitationRate, scale: 1 / secondsPerDay},
	"mm day-1":   {symbol: "mm d-1", dim: PrecipitationRate, scale: 1 / secondsPerDay},
	"m d-1":      {symbol: "m d-1", dim: PrecipitationRate, scale: 1000 / secondsPerDay},
	"in d-1":     {symbol: "in d-1", dim: PrecipitationRate, scale: 25.4 / secondsPerDay},

	// Dimensionless.
	"":  {symbol: "", dim: Dimensionless, scale: 1},
	"1": {symbol: "", dim: Dimensionless, scale: 1},
}

// Parse resolves a unit spelling. Surrounding and repeated interior
// whitespace is ignored.
func Parse(s string) (Unit, error) {
	key := strings.Join(strings.Fields(s), " ")
	u, ok := unitTable[key]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

// MustParse is Parse for spellings known at compile time. It panics on
// failure and exists for static tables such as check defaults.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Convert expresses a value of unit from in unit to. The dimensions must
// match. Same-unit conversion is the identity, bit for bit: exact-equality
// thresholds rely on this.
func Convert(v float64, from, to Unit) (float64, error) {
	if from.Dimension() != to.Dimension() {
		return 0, fmt.Errorf("%w: %s to %s", ErrIncompatibleUnits, describe(from), describe(to))
	}
	if from.symbol == to.symbol {
		return v, nil
	}
	return to.fromBase(from.toBase(v)), nil
}

func describe(u Unit) string {
	if u.symbol == "" {
		return "dimensionless"
	}
	return u.symbol
}
