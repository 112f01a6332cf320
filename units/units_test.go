package units

import (
	"errors"
	"math"
	"testing"
	"time"

	"goclim/array"
)

func TestParse_Spellings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"K", "K"},
		{"kelvin", "K"},
		{"degC", "degC"},
		{"degF", "degF"},
		{"kg m-2 s-1", "kg m-2 s-1"},
		{"kg/m2/s", "kg m-2 s-1"},
		{"mm d-1", "mm d-1"},
		{"mm/day", "mm d-1"},
		{"  mm   d-1 ", "mm d-1"},
		{"", ""},
		{"1", ""},
	}
	for _, tt := range tests {
		u, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if u.String() != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, u.String(), tt.want)
		}
	}

	if _, err := Parse("furlongs/fortnight"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("unknown unit error = %v, want ErrUnknownUnit", err)
	}
}

func TestConvert_Temperature(t *testing.T) {
	tests := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{0, "degC", "K", 273.15},
		{273.15, "K", "degC", 0},
		{-90, "degC", "K", 183.15},
		{32, "degF", "degC", 0},
		{212, "degF", "K", 373.15},
		{100, "degC", "degF", 212},
	}
	for _, tt := range tests {
		got, err := Convert(tt.v, MustParse(tt.from), MustParse(tt.to))
		if err != nil {
			t.Errorf("Convert(%v, %s, %s) failed: %v", tt.v, tt.from, tt.to, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.v, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConvert_PrecipitationRate(t *testing.T) {
	got, err := Convert(1, MustParse("mm d-1"), MustParse("kg m-2 s-1"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(got-1.0/86400.0) > 1e-15 {
		t.Errorf("1 mm d-1 = %v kg m-2 s-1, want %v", got, 1.0/86400.0)
	}

	back, err := Convert(got, MustParse("kg m-2 s-1"), MustParse("mm d-1"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(back-1) > 1e-12 {
		t.Errorf("round trip = %v, want 1", back)
	}
}

func TestConvert_SameUnitIsIdentity(t *testing.T) {
	// Exact-equality thresholds depend on same-unit conversion being
	// bit-identical, not merely close.
	v := 0.1 + 0.2
	for _, u := range []string{"K", "degC", "mm d-1", "kg m-2 s-1"} {
		got, err := Convert(v, MustParse(u), MustParse(u))
		if err != nil {
			t.Fatalf("Convert(%s): %v", u, err)
		}
		if got != v {
			t.Errorf("Convert(%v, %s, %s) = %v, want the input unchanged", v, u, u, got)
		}
	}
}

func TestConvert_DimensionMismatch(t *testing.T) {
	_, err := Convert(1, MustParse("K"), MustParse("mm d-1"))
	if !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("error = %v, want ErrIncompatibleUnits", err)
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity("-90 degC")
	if err != nil {
		t.Fatalf("ParseQuantity failed: %v", err)
	}
	if q.Value != -90 || q.Unit.String() != "degC" {
		t.Errorf("quantity = %v %q", q.Value, q.Unit.String())
	}

	q, err = ParseQuantity("300 mm d-1")
	if err != nil {
		t.Fatalf("ParseQuantity failed: %v", err)
	}
	if q.Value != 300 || q.Unit.String() != "mm d-1" {
		t.Errorf("quantity = %v %q", q.Value, q.Unit.String())
	}
	if q.String() != "300 mm d-1" {
		t.Errorf("String = %q", q.String())
	}

	if _, err := ParseQuantity("fast"); err == nil {
		t.Error("quantity without magnitude should fail")
	}
	if _, err := ParseQuantity(""); err == nil {
		t.Error("empty quantity should fail")
	}
}

func seriesWithUnits(t *testing.T, name, u string, values []float64) *array.DataArray {
	t.Helper()
	times := make([]time.Time, len(values))
	for i := range times {
		times[i] = time.Date(2000, 1, 1+i, 0, 0, 0, 0, time.UTC)
	}
	da, err := array.NewSeries(name, values, times, array.Attrs{array.AttrUnits: u})
	if err != nil {
		t.Fatalf("NewSeries failed: %v", err)
	}
	return da
}

func TestConvertTo_ThresholdAdaptsToData(t *testing.T) {
	tas := seriesWithUnits(t, "tas", "K", []float64{250, 300})
	got, err := ConvertTo("-90 degC", tas)
	if err != nil {
		t.Fatalf("ConvertTo failed: %v", err)
	}
	if math.Abs(got-183.15) > 1e-9 {
		t.Errorf("threshold = %v K, want 183.15", got)
	}

	pr := seriesWithUnits(t, "pr", "kg m-2 s-1", []float64{0})
	if _, err := ConvertTo("-90 degC", pr); !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("error = %v, want ErrIncompatibleUnits", err)
	}
}

func TestConvertArray(t *testing.T) {
	nan := math.NaN()
	tasmin := seriesWithUnits(t, "tasmin", "degC", []float64{0, nan, -40})

	k, err := ConvertArray(tasmin, "K")
	if err != nil {
		t.Fatalf("ConvertArray failed: %v", err)
	}
	if math.Abs(k.At(0)-273.15) > 1e-9 || math.Abs(k.At(2)-233.15) > 1e-9 {
		t.Errorf("values = %v", k.Values())
	}
	if !math.IsNaN(k.At(1)) {
		t.Error("NaN should survive conversion")
	}
	if k.Units() != "K" {
		t.Errorf("units attr = %q, want K", k.Units())
	}
	if tasmin.Units() != "degC" || tasmin.At(0) != 0 {
		t.Error("source array was mutated")
	}
}
