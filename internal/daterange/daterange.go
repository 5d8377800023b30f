// Package daterange converts the optional year/month/day parts of an archive
// or permalink URL into a concrete inclusive date window.
package daterange

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when the supplied parts do not form a real
// calendar date, e.g. month 13 or Feb 29 outside a leap year.
var ErrInvalidDate = errors.New("daterange: invalid calendar date")

// Range is an inclusive date window.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the range, endpoints included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Resolve maps optional date parts to an inclusive range. A zero part means
// absent. The rules:
//
//	year absent          -> (nil, nil): no date filter
//	year only            -> Jan 1 00:00:00 through Dec 31 23:59:59
//	year + month         -> first of month through last second of month
//	year + month + day   -> that day, midnight through 23:59:59
//
// Invalid combinations resolve to ErrInvalidDate rather than panicking; a day
// without a month is treated the same way.
func Resolve(year, month, day int) (*Range, error) {
	if year == 0 {
		return nil, nil
	}
	if day != 0 && month == 0 {
		return nil, ErrInvalidDate
	}

	switch {
	case month == 0:
		return &Range{
			From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
		}, nil
	case day == 0:
		if month < 1 || month > 12 {
			return nil, ErrInvalidDate
		}
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return &Range{
			From: from,
			To:   from.AddDate(0, 1, 0).Add(-time.Second),
		}, nil
	default:
		from := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range parts (Feb 30 becomes Mar 2), so
		// round-trip the parts to detect an invalid date.
		if from.Year() != year || from.Month() != time.Month(month) || from.Day() != day {
			return nil, ErrInvalidDate
		}
		return &Range{
			From: from,
			To:   from.AddDate(0, 0, 1).Add(-time.Second),
		}, nil
	}
}
