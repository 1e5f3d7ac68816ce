package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DateOf strips the time of day, keeping the calendar date of t in its own location.
// The result is midnight UTC so dates compare and subtract without DST effects.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsAfter reports whether a falls on a later calendar day than b
func IsAfter(a, b time.Time) bool {
	return DateOf(a).After(DateOf(b))
}

// IsSameDay reports whether a and b fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// DaysBetween returns the signed number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
