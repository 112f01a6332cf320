package freq

import "errors"

// Sentinel errors. Callers match with errors.Is.
var (
	// ErrInvalidMode marks an extreme-value mode outside min/low/max/high.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrUnknownDistribution marks a distribution name outside the
	// supported table.
	ErrUnknownDistribution = errors.New("unknown distribution")

	// ErrUnsupportedIndexer marks time-indexer combinations the package
	// does not handle: several indexers at once, or month lists out of
	// ascending order when the resampling frequency is inferred.
	ErrUnsupportedIndexer = errors.New("unsupported time indexer")
)
