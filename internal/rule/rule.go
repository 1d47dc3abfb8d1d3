// Package rule defines the yearly recurrence rules the academic calendar
// is derived from, and resolves them to concrete dates.
//
// Every rule fires exactly once per calendar year: either on the n-th
// occurrence of a weekday within a month (n may be negative, counted from
// the end of the month) or on a fixed day of a month. Resolution is a pure
// function of (rule, year); the windowed Generator in generator.go provides
// the sequential rrule-backed view of the same rules.
package rule

import "time"

// Rule describes one yearly-repeating event.
//
// When Ordinal is non-zero the rule means "the Ordinal-th Weekday of
// Month" (negative Ordinal counts back from the end of the month).
// When Ordinal is zero the rule means "day Day of Month".
type Rule struct {
	Name    string
	Month   time.Month
	Weekday time.Weekday
	Ordinal int
	Day     int
}

// The eight anchor rules of the academic calendar. The patterns were
// determined empirically from the institution's published calendars for
// academic years since 2012.
var (
	Thanksgiving    = Rule{Name: "Thanksgiving", Month: time.November, Weekday: time.Thursday, Ordinal: 4}
	LaborDay        = Rule{Name: "Labor Day", Month: time.September, Weekday: time.Monday, Ordinal: 1}
	MLKDay          = Rule{Name: "MLK Day", Month: time.January, Weekday: time.Monday, Ordinal: 3}
	MemorialDay     = Rule{Name: "Memorial Day", Month: time.March, Weekday: time.Monday, Ordinal: -1}
	IndependenceDay = Rule{Name: "Independence Day", Month: time.July, Day: 4}
	FallTermStart   = Rule{Name: "Fall Term Start", Month: time.August, Weekday: time.Monday, Ordinal: -2}
	FallBreakStart  = Rule{Name: "Fall Break Start", Month: time.October, Weekday: time.Monday, Ordinal: -2}
	SpringWithdraw  = Rule{Name: "Spring Withdraw Deadline", Month: time.March, Weekday: time.Monday, Ordinal: 3}
)

// All lists every defined rule.
var All = []Rule{
	Thanksgiving,
	LaborDay,
	MLKDay,
	MemorialDay,
	IndependenceDay,
	FallTermStart,
	FallBreakStart,
	SpringWithdraw,
}

// CalendarYear maps an academic year to the calendar year this rule fires
// in. An academic year runs August through the following July, so rules
// for months before August fall in the next calendar year. Callers asking
// for MLK Day of academic year 2019 get the January 2020 date.
func (r Rule) CalendarYear(academicYear int) int {
	if r.Month < time.August {
		return academicYear + 1
	}
	return academicYear
}

// DateIn resolves the rule within the given calendar year.
func (r Rule) DateIn(calendarYear int) time.Time {
	if r.Ordinal == 0 {
		return time.Date(calendarYear, r.Month, r.Day, 0, 0, 0, 0, time.UTC)
	}
	day := nthWeekday(calendarYear, r.Month, r.Weekday, r.Ordinal)
	return time.Date(calendarYear, r.Month, day, 0, 0, 0, 0, time.UTC)
}

// DateFor resolves the rule for the given academic year, applying the
// calendar-year offset from CalendarYear.
func (r Rule) DateFor(academicYear int) time.Time {
	return r.DateIn(r.CalendarYear(academicYear))
}

// nthWeekday returns the day of month of the n-th occurrence of wd in
// (year, month). Negative n counts from the end of the month and stays
// within it: for a month ending on the target weekday, -1 is the final
// day itself, not a slot in the next week.
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) int {
	if n > 0 {
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		offset := (int(wd) - int(first.Weekday()) + 7) % 7
		return 1 + offset + 7*(n-1)
	}
	// Last day of the month: day 0 of the following month.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	back := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.Day() - back - 7*(-n-1)
}
