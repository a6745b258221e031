package utils

import (
	"fmt"
	"time"

	"frontdesk/constants"
)

// DateOf truncates t to midnight UTC of its calendar day in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "2006-01-02" string into a UTC midnight date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return MonthStart(year, month).AddDate(0, 1, -1).Day()
}

// NightsBetween counts whole days in [from, to).
func NightsBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
