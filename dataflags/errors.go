package dataflags

import (
	"errors"
	"strings"
)

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrMissingVariable marks a sibling variable a check needs but the
	// dataset does not carry. Evaluate converts it into a skipped result,
	// so it never reaches Evaluate's caller.
	ErrMissingVariable = errors.New("missing variable")

	// ErrUnknownVariable marks a primary variable with no entry in the
	// variable configuration.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrUnknownCheck marks a registry lookup under a name never
	// registered.
	ErrUnknownCheck = errors.New("unknown check")
)

// DataQualityError reports that at least one quality control check flagged
// the evaluated variable. Evaluate returns it only under RaiseOnFlag, and
// always alongside the Flags it summarizes.
type DataQualityError struct {
	// Flags holds the full evaluation, skipped checks included.
	Flags *Flags

	// Comments collects the comment of every raised flag, one entry per
	// flagged check, in configuration order.
	Comments []string
}

func newDataQualityError(flags *Flags) *DataQualityError {
	e := &DataQualityError{Flags: flags}
	for _, r := range flags.Raised() {
		e.Comments = append(e.Comments, r.Comment)
	}
	return e
}

// Error lists every raised flag's comment, newline and tab separated.
func (e *DataQualityError) Error() string {
	return "data quality flags indicate suspicious values; flags raised:\n\t" +
		strings.Join(e.Comments, "\n\t")
}
