// Package runlength detects suspicious runs in series: stretches of
// consecutive values that are identical or that satisfy a comparison for
// at least a minimum number of steps. Sensors that report the same value
// day after day, or that sit pinned at a threshold, show up here.
package runlength

import (
	"fmt"
	"math"

	"goclim/array"
)

// Op is a comparison operator applied between values and a threshold.
type Op string

const (
	OpEqual        Op = "=="
	OpNotEqual     Op = "!="
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
)

func (op Op) eval(v, thresh float64) (bool, error) {
	// NaN breaks every run regardless of the operator.
	if math.IsNaN(v) {
		return false, nil
	}
	switch op {
	case OpEqual:
		return v == thresh, nil
	case OpNotEqual:
		return v != thresh, nil
	case OpGreater:
		return v > thresh, nil
	case OpGreaterEqual:
		return v >= thresh, nil
	case OpLess:
		return v < thresh, nil
	case OpLessEqual:
		return v <= thresh, nil
	}
	return false, fmt.Errorf("unknown comparison operator %q", op)
}

// SuspiciousRun marks every position inside a run of at least window
// consecutive time steps whose value satisfies op against thresh. NaN never
// satisfies the comparison, so it terminates runs. Shorter runs are left
// unmarked.
func SuspiciousRun(da *array.DataArray, window int, op Op, thresh float64) (*array.BoolArray, error) {
	if window < 1 {
		return nil, fmt.Errorf("run window must be at least 1, got %d", window)
	}
	if _, err := op.eval(0, 0); err != nil {
		return nil, err
	}
	return da.MapSeriesBool(array.DimTime, func(series []float64) ([]bool, error) {
		cond := make([]bool, len(series))
		for i, v := range series {
			ok, err := op.eval(v, thresh)
			if err != nil {
				return nil, err
			}
			cond[i] = ok
		}
		return markRuns(cond, window), nil
	})
}

// SuspiciousIdenticalRun marks every position inside a run of at least
// window consecutive identical values. Equality is exact; NaN is never
// equal to anything, including itself, so it terminates runs.
func SuspiciousIdenticalRun(da *array.DataArray, window int) (*array.BoolArray, error) {
	if window < 1 {
		return nil, fmt.Errorf("run window must be at least 1, got %d", window)
	}
	return da.MapSeriesBool(array.DimTime, func(series []float64) ([]bool, error) {
		marks := make([]bool, len(series))
		start := 0
		for i := 1; i <= len(series); i++ {
			if i < len(series) && series[i] == series[i-1] {
				continue
			}
			if i-start >= window {
				for j := start; j < i; j++ {
					marks[j] = true
				}
			}
			start = i
		}
		return marks, nil
	})
}

// markRuns flags maximal stretches of consecutive true entries with length
// of at least window.
func markRuns(cond []bool, window int) []bool {
	marks := make([]bool, len(cond))
	start := -1
	for i := 0; i <= len(cond); i++ {
		if i < len(cond) && cond[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= window {
			for j := start; j < i; j++ {
				marks[j] = true
			}
		}
		start = -1
	}
	return marks
}
