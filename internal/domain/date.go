package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the month/day/2-digit-year layout used by project records.
// Single-digit months and days are accepted with or without a leading zero.
const DateLayout = "1/2/06"

// ParseDate parses a record date into a calendar date at UTC midnight.
// Two-digit years 69-99 resolve to 19xx and 00-68 to 20xx.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected M/D/YY)", ErrInvalidDate, s)
	}
	return Midnight(t), nil
}

// Midnight truncates t to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date in the record layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NextDay returns the calendar day after t.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
