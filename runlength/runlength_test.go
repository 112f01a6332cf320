package runlength

import (
	"math"
	"testing"
	"time"

	"goclim/array"
)

func series(t *testing.T, values []float64) *array.DataArray {
	t.Helper()
	times := make([]time.Time, len(values))
	for i := range times {
		times[i] = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
	}
	da, err := array.NewSeries("pr", values, times, array.Attrs{array.AttrUnits: "mm d-1"})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	return da
}

func assertMask(t *testing.T, got *array.BoolArray, want []bool) {
	t.Helper()
	vals := got.Values()
	if len(vals) != len(want) {
		t.Fatalf("mask length = %d, want %d", len(vals), len(want))
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v", i, vals[i], want[i])
		}
	}
}

func TestSuspiciousRun_MarksWholeRun(t *testing.T) {
	// Three days pinned at 1, then noise, then only two days pinned.
	da := series(t, []float64{1, 1, 1, 4, 1, 1, 7})

	mask, err := SuspiciousRun(da, 3, OpEqual, 1)
	if err != nil {
		t.Fatalf("SuspiciousRun failed: %v", err)
	}
	assertMask(t, mask, []bool{true, true, true, false, false, false, false})
}

func TestSuspiciousRun_Operators(t *testing.T) {
	da := series(t, []float64{5, 6, 7, 1, 8, 9})

	tests := []struct {
		name   string
		op     Op
		thresh float64
		want   []bool
	}{
		{"greater", OpGreater, 4, []bool{true, true, true, false, false, false}},
		{"greater equal", OpGreaterEqual, 8, []bool{false, false, false, false, true, true}},
		{"less", OpLess, 8, []bool{true, true, true, true, false, false}},
		{"not equal", OpNotEqual, 1, []bool{true, true, true, false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := SuspiciousRun(da, 2, tt.op, tt.thresh)
			if err != nil {
				t.Fatalf("SuspiciousRun failed: %v", err)
			}
			assertMask(t, mask, tt.want)
		})
	}
}

func TestSuspiciousRun_NaNBreaksRuns(t *testing.T) {
	nan := math.NaN()
	da := series(t, []float64{1, 1, nan, 1, 1})

	mask, err := SuspiciousRun(da, 3, OpEqual, 1)
	if err != nil {
		t.Fatalf("SuspiciousRun failed: %v", err)
	}
	assertMask(t, mask, []bool{false, false, false, false, false})

	// The not-equal operator must not treat NaN as a match either.
	mask, err = SuspiciousRun(da, 5, OpNotEqual, 99)
	if err != nil {
		t.Fatalf("SuspiciousRun failed: %v", err)
	}
	if mask.Any().Values()[0] {
		t.Error("NaN should terminate a not-equal run")
	}
}

func TestSuspiciousRun_Validation(t *testing.T) {
	da := series(t, []float64{1, 2})
	if _, err := SuspiciousRun(da, 0, OpEqual, 1); err == nil {
		t.Error("window 0 should fail")
	}
	if _, err := SuspiciousRun(da, 2, Op("~"), 1); err == nil {
		t.Error("unknown operator should fail")
	}
}

func TestSuspiciousIdenticalRun(t *testing.T) {
	nan := math.NaN()
	da := series(t, []float64{2, 2, 2, 2, 2, 3, 3, nan, nan, nan, 4, 4, 4, 4, 4})

	mask, err := SuspiciousIdenticalRun(da, 5)
	if err != nil {
		t.Fatalf("SuspiciousIdenticalRun failed: %v", err)
	}
	want := []bool{
		true, true, true, true, true, // five identical
		false, false, // run of two
		false, false, false, // NaN never equals NaN
		true, true, true, true, true, // five identical again
	}
	assertMask(t, mask, want)
}

func TestSuspiciousIdenticalRun_ShortSeries(t *testing.T) {
	da := series(t, []float64{7})
	mask, err := SuspiciousIdenticalRun(da, 5)
	if err != nil {
		t.Fatalf("SuspiciousIdenticalRun failed: %v", err)
	}
	assertMask(t, mask, []bool{false})
}
