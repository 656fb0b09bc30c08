package datecheck

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownValue is returned for weekday indices or names outside the table.
var ErrUnknownValue = errors.New("unknown value")

// Check reports whether a date passes a predicate. Checks must be pure and
// total over any valid calendar date.
type Check func(t time.Time) bool

// Weekday returns the Monday=0 .. Sunday=6 ordinal for t.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

const (
	friday   = 4
	saturday = 5
	sunday   = 6
)

// Workday reports whether t falls on Monday through Friday.
func Workday(t time.Time) bool {
	return Weekday(t) <= friday
}

// LastWorkdayOfWeek reports whether t is a Friday.
func LastWorkdayOfWeek(t time.Time) bool {
	return Weekday(t) == friday
}

// LastWorkdayOfMonth reports whether t is the last Friday of its month.
func LastWorkdayOfMonth(t time.Time) bool {
	return LastWorkdayOfWeek(t) && t.AddDate(0, 0, 7).Month() != t.Month()
}

// LastWorkdayOfYear reports whether t is the last Friday of its year.
func LastWorkdayOfYear(t time.Time) bool {
	return LastWorkdayOfWeek(t) && t.AddDate(0, 0, 7).Year() != t.Year()
}

// LastWorkdayOfFinancialYear reports whether t is the last Friday of a
// 1 July - 30 June financial year.
func LastWorkdayOfFinancialYear(t time.Time) bool {
	return LastWorkdayOfWeek(t) &&
		t.Month() == time.June &&
		t.AddDate(0, 0, 7).Month() == time.July
}

// LastDayOfWeek reports whether t is a Saturday.
func LastDayOfWeek(t time.Time) bool {
	return Weekday(t) == saturday
}

// LastDayOfMonth reports whether t is the final calendar day of its month.
func LastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

// LastDayOfYear reports whether t is 31 December.
func LastDayOfYear(t time.Time) bool {
	return t.AddDate(0, 0, 1).Year() != t.Year()
}

// LastDayOfFinancialYear reports whether t is 30 June, the final day of a
// 1 July - 30 June financial year.
func LastDayOfFinancialYear(t time.Time) bool {
	return t.Month() == time.June && t.AddDate(0, 0, 1).Month() == time.July
}

// FirstDayOfWeek reports whether t is a Sunday.
func FirstDayOfWeek(t time.Time) bool {
	return Weekday(t) == sunday
}

// FirstDayOfMonth reports whether t is the 1st of its month.
func FirstDayOfMonth(t time.Time) bool {
	return t.Day() == 1
}

// FirstDayOfYear reports whether t is 1 January.
func FirstDayOfYear(t time.Time) bool {
	return t.Day() == 1 && t.Month() == time.January
}

// FirstDayOfFinancialYear reports whether t is 1 July.
func FirstDayOfFinancialYear(t time.Time) bool {
	return t.Day() == 1 && t.Month() == time.July
}

// Day passes for every date. It is the catch-all at the end of a schedule.
func Day(time.Time) bool {
	return true
}

// WeekOfMonth returns the 1-indexed ordinal of t's week within its month,
// counted by stepping back 7 days at a time while remaining in the month.
func WeekOfMonth(t time.Time) int {
	count := 1
	for {
		lastWeek := t.AddDate(0, 0, -7)
		if lastWeek.Month() != t.Month() {
			return count
		}

		t = lastWeek
		count++
	}
}

var dayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayName converts a Monday=0 .. Sunday=6 ordinal to its English name.
func DayName(i int) (string, error) {
	if i < 0 || i >= len(dayNames) {
		return "", fmt.Errorf("%w: weekday index %d", ErrUnknownValue, i)
	}

	return dayNames[i], nil
}

// DayIndex converts an English weekday name to its Monday=0 .. Sunday=6
// ordinal. It is the inverse of [DayName] over the same table.
func DayIndex(name string) (int, error) {
	for i, n := range dayNames {
		if n == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: weekday name %q", ErrUnknownValue, name)
}
