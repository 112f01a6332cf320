package freq

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goclim/array"
	"goclim/calendar"
	"goclim/internal/testkit"
)

func daily(t *testing.T, start time.Time, values []float64) *array.DataArray {
	t.Helper()
	da, err := array.NewSeries("tas", values, testkit.DailyTimes(start, len(values)), array.Attrs{array.AttrUnits: "K"})
	require.NoError(t, err)
	return da
}

// monthValued builds one non-leap year of daily values equal to the month
// number, which makes selections self-describing.
func monthValued(t *testing.T) *array.DataArray {
	t.Helper()
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	times := testkit.DailyTimes(start, 365)
	values := make([]float64, len(times))
	for i, ts := range times {
		values[i] = float64(ts.Month())
	}
	return daily(t, start, values)
}

func TestSelectTime_NoIndexerIsIdentity(t *testing.T) {
	da := monthValued(t)
	sel, err := SelectTime(da)
	require.NoError(t, err)
	assert.Same(t, da, sel)
}

func TestSelectTime_Month(t *testing.T) {
	sel, err := SelectTime(monthValued(t), Month(time.July))
	require.NoError(t, err)
	assert.Equal(t, 31, sel.Size())
	for _, v := range sel.Values() {
		assert.Equal(t, 7.0, v)
	}
}

func TestSelectTime_MonthSet(t *testing.T) {
	sel, err := SelectTime(monthValued(t), Month(time.June, time.July, time.August))
	require.NoError(t, err)
	assert.Equal(t, 30+31+31, sel.Size())
}

func TestSelectTime_SeasonDJF(t *testing.T) {
	sel, err := SelectTime(monthValued(t), Season(calendar.SeasonDJF))
	require.NoError(t, err)
	// January and February of 2001 plus December of 2001.
	assert.Equal(t, 31+28+31, sel.Size())
	for _, v := range sel.Values() {
		assert.Contains(t, []float64{1, 2, 12}, v)
	}
}

func TestSelectTime_DayOfYearRange(t *testing.T) {
	sel, err := SelectTime(monthValued(t), DayOfYearRange(32, 59))
	require.NoError(t, err)
	assert.Equal(t, 28, sel.Size())
	for _, v := range sel.Values() {
		assert.Equal(t, 2.0, v)
	}
}

func TestSelectTime_RejectsMultipleIndexers(t *testing.T) {
	_, err := SelectTime(monthValued(t), Month(time.July), Season(calendar.SeasonJJA))
	assert.ErrorIs(t, err, ErrUnsupportedIndexer)
}

func TestSelectTime_DropsMissingSteps(t *testing.T) {
	da := monthValued(t)
	// July 4-6 of 2001 are ordinal days 185-187.
	vals := da.Values()
	vals[184], vals[185], vals[186] = math.NaN(), math.NaN(), math.NaN()

	sel, err := SelectTime(da, Month(time.July))
	require.NoError(t, err)
	assert.Equal(t, 28, sel.Size())
}

func TestResampleOps_NaNHandling(t *testing.T) {
	mixed := []float64{1, math.NaN(), 3}
	allNaN := []float64{math.NaN(), math.NaN()}

	cases := []struct {
		op     ResampleOp
		mixed  float64
		allNaN float64
	}{
		{OpMin, 1, math.NaN()},
		{OpMax, 3, math.NaN()},
		{OpMean, 2, math.NaN()},
		{OpStd, 1, math.NaN()},
		{OpVar, 1, math.NaN()},
		{OpSum, 4, 0},
		{OpCount, 2, 0},
		{OpArgMax, 2, math.NaN()},
		{OpArgMin, 0, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.op.Name(), func(t *testing.T) {
			assertValue(t, tc.mixed, tc.op.fn(mixed, nil))
			assertValue(t, tc.allNaN, tc.op.fn(allNaN, nil))
		})
	}
}

func assertValue(t *testing.T, want, got float64) {
	t.Helper()
	if math.IsNaN(want) {
		assert.True(t, math.IsNaN(got), "want NaN, got %v", got)
		return
	}
	assert.InDelta(t, want, got, 1e-12)
}

func TestSelectResampleOp_YearlyMax(t *testing.T) {
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 730)
	for i := range values {
		if i < 365 {
			values[i] = 1
		} else {
			values[i] = 2
		}
	}
	values[151] = 5 // 2001-06-01
	values[516] = 9 // 2002-06-01
	da := daily(t, start, values)

	out, err := SelectResampleOp(da, OpMax, calendar.MustFreq("YS-JAN"))
	require.NoError(t, err)
	require.Equal(t, []float64{5, 9}, out.Values())

	times, err := out.TimeCoord()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), times[0])
	assert.Equal(t, time.Date(2002, time.January, 1, 0, 0, 0, 0, time.UTC), times[1])
}

func TestSelectResampleOp_MonthIndexer(t *testing.T) {
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 730)
	values[151] = 5 // 2001-06-01
	values[170] = 7 // 2001-06-20, June maximum
	values[516] = 9 // 2002-06-01
	da := daily(t, start, values)

	out, err := SelectResampleOp(da, OpMax, calendar.MustFreq("YS-JAN"), Month(time.June))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 9}, out.Values())
}

func TestSelectResampleOp_CustomOp(t *testing.T) {
	spread := Op("spread", func(values []float64, _ []time.Time) float64 {
		valid := dropNaN(values, nil)
		if len(valid) == 0 {
			return math.NaN()
		}
		lo, hi := valid[0], valid[0]
		for _, v := range valid {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		return hi - lo
	})
	assert.Equal(t, "spread", spread.Name())

	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	da := daily(t, start, []float64{3, 8, 5})

	out, err := SelectResampleOp(da, spread, calendar.MustFreq("YS-JAN"))
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, out.Values())
}

func TestDOYMaxMin(t *testing.T) {
	start := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 365)
	values[149] = 10 // highest value on ordinal day 150
	values[29] = -4  // lowest on ordinal day 30
	da := daily(t, start, values)

	hi, err := DOYMax(da)
	require.NoError(t, err)
	v, err := hi.Item()
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)
	assert.Equal(t, "", hi.Units())

	lo, err := DOYMin(da)
	require.NoError(t, err)
	v, err = lo.Item()
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
}
