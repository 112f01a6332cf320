package testkit

import (
	"math"
	"testing"
	"time"

	"goclim/array"
)

func TestDailyTimes_ConsecutiveMidnights(t *testing.T) {
	start := time.Date(2001, time.February, 27, 13, 45, 0, 0, time.UTC)
	ts := DailyTimes(start, 4)
	if len(ts) != 4 {
		t.Fatalf("got %d times, want 4", len(ts))
	}
	want := time.Date(2001, time.February, 27, 0, 0, 0, 0, time.UTC)
	for i, got := range ts {
		if !got.Equal(want) {
			t.Errorf("day %d: got %v, want %v", i, got, want)
		}
		want = want.AddDate(0, 0, 1)
	}
	// 2001 is not a leap year: Feb 28 rolls straight into Mar 1.
	if ts[2].Month() != time.March || ts[2].Day() != 1 {
		t.Errorf("day 2: got %v, want March 1", ts[2])
	}
}

func TestGenerator_SameSeedSameSeries(t *testing.T) {
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

	a, err := NewClimateGenerator(42).TemperatureSeries("tas", start, 365, 288, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewClimateGenerator(42).TemperatureSeries("tas", start, 365, 288, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range a.Values() {
		if v != b.Values()[i] {
			t.Fatalf("value %d differs: %v against %v", i, v, b.Values()[i])
		}
	}
	if a.Units() != "K" {
		t.Errorf("units: got %q, want K", a.Units())
	}
}

func TestGenerator_SeedsDiverge(t *testing.T) {
	vs1 := NewClimateGenerator(1).NormalValues(16, 0, 1)
	vs2 := NewClimateGenerator(2).NormalValues(16, 0, 1)
	same := true
	for i := range vs1 {
		if vs1[i] != vs2[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical draws")
	}
}

func TestPrecipSeries_DryDaysAndUnits(t *testing.T) {
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	pr, err := NewClimateGenerator(7).PrecipSeries("pr", start, 1000, 3e-5, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	if pr.Units() != "kg m-2 s-1" {
		t.Fatalf("units: got %q", pr.Units())
	}
	if !pr.HasDim(array.DimTime) {
		t.Fatal("missing time dimension")
	}

	dry := 0
	for _, v := range pr.Values() {
		if math.IsNaN(v) || v < 0 {
			t.Fatalf("invalid amount %v", v)
		}
		if v == 0 {
			dry++
		}
	}
	// dryFraction 0.6 over 1000 days concentrates the dry count near 600.
	if dry < 400 || dry > 800 {
		t.Fatalf("dry days %d outside plausible range", dry)
	}
}
