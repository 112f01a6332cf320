package freq

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"goclim/calendar"
)

// TimeIndexer selects time steps by a calendar attribute: month of year,
// meteorological season, or a day-of-year range. Indexers that match
// nothing produce empty selections rather than errors, so out-of-range
// values are simply inert.
type TimeIndexer interface {
	// Matches reports whether the sample at t belongs to the selection.
	Matches(t time.Time) bool

	fmt.Stringer
}

type monthIndexer []time.Month

// Month selects samples falling in any of the given months (1-12).
func Month(months ...time.Month) TimeIndexer {
	return monthIndexer(months)
}

func (m monthIndexer) Matches(t time.Time) bool {
	for _, want := range m {
		if t.Month() == want {
			return true
		}
	}
	return false
}

func (m monthIndexer) String() string {
	parts := make([]string, len(m))
	for i, month := range m {
		parts[i] = fmt.Sprintf("%d", int(month))
	}
	return "month=[" + strings.Join(parts, ",") + "]"
}

// ascending reports whether the month list is sorted.
func (m monthIndexer) ascending() bool {
	return sort.SliceIsSorted(m, func(i, j int) bool { return m[i] < m[j] })
}

type seasonIndexer string

// Season selects samples falling in a meteorological season ("DJF",
// "MAM", "JJA", "SON"). DJF spans the year boundary.
func Season(code string) TimeIndexer {
	return seasonIndexer(code)
}

func (s seasonIndexer) Matches(t time.Time) bool {
	return calendar.SeasonOf(t) == string(s)
}

func (s seasonIndexer) String() string { return "season=" + string(s) }

type doyRangeIndexer struct {
	lo, hi int
}

// DayOfYearRange selects samples whose ordinal day falls in [lo, hi], both
// inclusive.
func DayOfYearRange(lo, hi int) TimeIndexer {
	return doyRangeIndexer{lo: lo, hi: hi}
}

func (r doyRangeIndexer) Matches(t time.Time) bool {
	d := calendar.DayOfYear(t)
	return r.lo <= d && d <= r.hi
}

func (r doyRangeIndexer) String() string {
	return fmt.Sprintf("dayofyear=[%d,%d]", r.lo, r.hi)
}
