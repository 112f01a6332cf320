// Package array provides small labeled N-dimensional arrays for climate
// series work.
//
// A [DataArray] couples a row-major float64 buffer with named dimensions,
// per-dimension coordinates, and free-form string attributes. The zero
// dimension case (a scalar) is valid and is what reductions collapse to.
// Missing samples are carried as NaN; arithmetic propagates NaN while
// comparisons treat it as "not comparable" and yield false.
//
// The package deliberately implements only the operations the rest of the
// module needs: elementwise comparison and arithmetic, series iteration and
// transformation along one dimension, time-bucketed reduction, trailing
// rolling means, and label-based selection. It is not a general array
// programming toolkit.
//
// Attribute handling follows one rule everywhere: an operation's result
// starts from a copy of the primary operand's attributes. Derived arrays
// therefore keep units and history labels unless a caller overwrites them.
package array
