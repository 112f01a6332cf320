package calendar

import (
	"fmt"
	"time"
)

// Season codes follow the meteorological convention; DJF wraps the year
// boundary.
const (
	SeasonDJF = "DJF"
	SeasonMAM = "MAM"
	SeasonJJA = "JJA"
	SeasonSON = "SON"
)

// DayOfYear returns the 1-based ordinal day, leap-aware (Mar 1 is day 61
// in leap years).
func DayOfYear(t time.Time) int { return t.YearDay() }

// MaxDayOfYear is the largest ordinal day any calendar year can have.
const MaxDayOfYear = 366

// SeasonOf returns the meteorological season containing t.
func SeasonOf(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return SeasonDJF
	case time.March, time.April, time.May:
		return SeasonMAM
	case time.June, time.July, time.August:
		return SeasonJJA
	default:
		return SeasonSON
	}
}

// SeasonMonths returns the months of a season code in seasonal order.
func SeasonMonths(season string) ([]time.Month, error) {
	switch season {
	case SeasonDJF:
		return []time.Month{time.December, time.January, time.February}, nil
	case SeasonMAM:
		return []time.Month{time.March, time.April, time.May}, nil
	case SeasonJJA:
		return []time.Month{time.June, time.July, time.August}, nil
	case SeasonSON:
		return []time.Month{time.September, time.October, time.November}, nil
	}
	return nil, fmt.Errorf("unknown season %q", season)
}
