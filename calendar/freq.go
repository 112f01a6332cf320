// Package calendar provides the time arithmetic behind resampling and
// day-of-year climatologies: anchored period frequencies, meteorological
// seasons, and window-smoothed per-day-of-year statistics.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownFreq marks a frequency string outside the supported grammar.
var ErrUnknownFreq = errors.New("unknown frequency")

// Code is the period kind of a frequency.
type Code string

const (
	Yearly    Code = "YS" // year starting at the anchor month
	Quarterly Code = "QS" // quarter starting at the anchor month
	Monthly   Code = "MS"
	Daily     Code = "D"
)

// Freq identifies a resampling period: a period kind plus, for anchored
// kinds, the month the period starts at. Spellings follow the
// period-start convention: "YS", "YS-DEC", "QS-DEC", "MS", "D".
type Freq struct {
	code   Code
	anchor time.Month
}

var monthCodes = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var monthNames = func() map[time.Month]string {
	m := make(map[time.Month]string, len(monthCodes))
	for name, month := range monthCodes {
		m[month] = name
	}
	return m
}()

// ParseFreq resolves a frequency spelling. Anchors default to January, so
// "YS" and "YS-JAN" are the same frequency. Only yearly and quarterly
// frequencies accept an anchor.
func ParseFreq(s string) (Freq, error) {
	base, anchorStr, hasAnchor := strings.Cut(strings.TrimSpace(s), "-")
	switch Code(base) {
	case Yearly, Quarterly:
		anchor := time.January
		if hasAnchor {
			m, ok := monthCodes[strings.ToUpper(anchorStr)]
			if !ok {
				return Freq{}, fmt.Errorf("%w: %q has no month anchor %q", ErrUnknownFreq, s, anchorStr)
			}
			anchor = m
		}
		return Freq{code: Code(base), anchor: anchor}, nil
	case Monthly, Daily:
		if hasAnchor {
			return Freq{}, fmt.Errorf("%w: %q does not take an anchor", ErrUnknownFreq, s)
		}
		return Freq{code: Code(base)}, nil
	}
	return Freq{}, fmt.Errorf("%w: %q", ErrUnknownFreq, s)
}

// MustFreq is ParseFreq for spellings known at compile time.
func MustFreq(s string) Freq {
	f, err := ParseFreq(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String renders the canonical spelling; anchored kinds always spell the
// anchor, so ParseFreq(f.String()) == f.
func (f Freq) String() string {
	switch f.code {
	case Yearly, Quarterly:
		return string(f.code) + "-" + monthNames[f.anchor]
	default:
		return string(f.code)
	}
}

// Kind returns the period kind.
func (f Freq) Kind() Code { return f.code }

// PeriodStart maps a sample time to the start of the period containing it,
// at midnight UTC of the period's first day.
func (f Freq) PeriodStart(t time.Time) time.Time {
	t = t.UTC()
	switch f.code {
	case Yearly:
		year := t.Year()
		if t.Month() < f.anchor {
			year--
		}
		return time.Date(year, f.anchor, 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		since := (int(t.Month()) - int(f.anchor) + 12) % 12
		startMonth := int(f.anchor) + (since/3)*3
		year := t.Year()
		if int(t.Month()) < int(f.anchor) {
			year--
		}
		// startMonth may run past December; normalize through Date.
		return time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}
