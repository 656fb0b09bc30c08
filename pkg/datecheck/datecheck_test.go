package datecheck_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwjstewart/gfsbuddy/pkg/datecheck"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{name: "monday", t: date(2023, time.March, 13), want: 0},
		{name: "friday", t: date(2023, time.March, 17), want: 4},
		{name: "saturday", t: date(2023, time.March, 18), want: 5},
		{name: "sunday", t: date(2023, time.March, 19), want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, datecheck.Weekday(tt.t))
		})
	}
}

func TestChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		check datecheck.Check
		name  string
		t     time.Time
		want  bool
	}{
		{name: "workday wednesday", check: datecheck.Workday, t: date(2023, time.March, 15), want: true},
		{name: "workday saturday", check: datecheck.Workday, t: date(2023, time.March, 18), want: false},
		{name: "workday sunday", check: datecheck.Workday, t: date(2023, time.March, 19), want: false},

		{name: "last workday of week on friday", check: datecheck.LastWorkdayOfWeek, t: date(2023, time.March, 17), want: true},
		{name: "last workday of week on thursday", check: datecheck.LastWorkdayOfWeek, t: date(2023, time.March, 16), want: false},

		// June 2023 has Fridays on the 2nd, 9th, 16th, 23rd, and 30th.
		{name: "last friday of month", check: datecheck.LastWorkdayOfMonth, t: date(2023, time.June, 30), want: true},
		{name: "friday with another friday left in month", check: datecheck.LastWorkdayOfMonth, t: date(2023, time.June, 23), want: false},
		{name: "last day of month but not friday", check: datecheck.LastWorkdayOfMonth, t: date(2023, time.April, 30), want: false},

		{name: "last friday of year", check: datecheck.LastWorkdayOfYear, t: date(2023, time.December, 29), want: true},
		{name: "last friday of june is not last of year", check: datecheck.LastWorkdayOfYear, t: date(2023, time.June, 30), want: false},

		{name: "last friday of financial year", check: datecheck.LastWorkdayOfFinancialYear, t: date(2023, time.June, 30), want: true},
		{name: "earlier june friday", check: datecheck.LastWorkdayOfFinancialYear, t: date(2023, time.June, 23), want: false},
		{name: "last friday of calendar year", check: datecheck.LastWorkdayOfFinancialYear, t: date(2023, time.December, 29), want: false},

		{name: "last day of week", check: datecheck.LastDayOfWeek, t: date(2023, time.March, 18), want: true},
		{name: "last day of week on friday", check: datecheck.LastDayOfWeek, t: date(2023, time.March, 17), want: false},

		{name: "last day of month", check: datecheck.LastDayOfMonth, t: date(2023, time.February, 28), want: true},
		{name: "leap february", check: datecheck.LastDayOfMonth, t: date(2024, time.February, 28), want: false},
		{name: "last day of leap february", check: datecheck.LastDayOfMonth, t: date(2024, time.February, 29), want: true},

		{name: "new years eve", check: datecheck.LastDayOfYear, t: date(2023, time.December, 31), want: true},
		{name: "end of june is not end of year", check: datecheck.LastDayOfYear, t: date(2023, time.June, 30), want: false},

		{name: "30 june ends the financial year", check: datecheck.LastDayOfFinancialYear, t: date(2023, time.June, 30), want: true},
		{name: "29 june does not", check: datecheck.LastDayOfFinancialYear, t: date(2023, time.June, 29), want: false},
		{name: "31 december does not", check: datecheck.LastDayOfFinancialYear, t: date(2023, time.December, 31), want: false},

		{name: "first day of week", check: datecheck.FirstDayOfWeek, t: date(2023, time.January, 1), want: true},
		{name: "first day of week on monday", check: datecheck.FirstDayOfWeek, t: date(2023, time.January, 2), want: false},

		{name: "first of month", check: datecheck.FirstDayOfMonth, t: date(2023, time.March, 1), want: true},
		{name: "second of month", check: datecheck.FirstDayOfMonth, t: date(2023, time.March, 2), want: false},

		{name: "new years day", check: datecheck.FirstDayOfYear, t: date(2023, time.January, 1), want: true},
		{name: "first of july is not new years", check: datecheck.FirstDayOfYear, t: date(2023, time.July, 1), want: false},

		{name: "1 july starts the financial year", check: datecheck.FirstDayOfFinancialYear, t: date(2023, time.July, 1), want: true},
		{name: "1 january does not", check: datecheck.FirstDayOfFinancialYear, t: date(2023, time.January, 1), want: false},

		{name: "day always passes", check: datecheck.Day, t: date(2023, time.March, 18), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.check(tt.t))
		})
	}
}

func TestWeekOfMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{name: "first friday", t: date(2023, time.March, 3), want: 1},
		{name: "first of month", t: date(2023, time.September, 1), want: 1},
		{name: "second week", t: date(2023, time.March, 10), want: 2},
		// December 2023 has five Fridays: 1, 8, 15, 22, 29.
		{name: "fifth friday", t: date(2023, time.December, 29), want: 5},
		{name: "31-day month starting friday", t: date(2021, time.October, 29), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, datecheck.WeekOfMonth(tt.t))
		})
	}
}

func TestDayNameRoundTrip(t *testing.T) {
	t.Parallel()

	for i := range 7 {
		name, err := datecheck.DayName(i)
		require.NoError(t, err)

		got, err := datecheck.DayIndex(name)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestDayNameUnknown(t *testing.T) {
	t.Parallel()

	_, err := datecheck.DayName(7)
	require.ErrorIs(t, err, datecheck.ErrUnknownValue)

	_, err = datecheck.DayName(-1)
	require.ErrorIs(t, err, datecheck.ErrUnknownValue)

	_, err = datecheck.DayIndex("Fryday")
	require.ErrorIs(t, err, datecheck.ErrUnknownValue)
}
