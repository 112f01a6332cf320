// Package freq estimates return-period values from climate series. The
// pipeline selects a season, month set or day-of-year range, reduces each
// resampling period to its extreme, fits a distribution to the extremes by
// maximum likelihood, and inverts the fitted tail at the requested return
// periods.
//
// The pieces compose freely: [SelectResampleOp] produces per-period
// extremes, [Fit] turns them into a parameter array under a leading
// dparams dimension, and [FA] consumes fitted parameters to produce one
// value per return period. [FrequencyAnalysis] chains the whole pipeline.
package freq
