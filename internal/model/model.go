package model

import (
	"fmt"
	"strings"
	"time"
)

// Semester is one of the three instructional periods of an academic year.
type Semester string

const (
	Fall   Semester = "Fall"
	Spring Semester = "Spring"
	Summer Semester = "Summer"
)

// Semesters lists the semesters in the order they occur within an
// academic year.
var Semesters = []Semester{Fall, Spring, Summer}

// Code returns the numeric semester code used in term codes.
func (s Semester) Code() int {
	switch s {
	case Fall:
		return 10
	case Spring:
		return 20
	case Summer:
		return 30
	}
	return 0
}

// SemesterFromCode maps a numeric semester code back to its Semester.
func SemesterFromCode(code int) (Semester, bool) {
	switch code {
	case 10:
		return Fall, true
	case 20:
		return Spring, true
	case 30:
		return Summer, true
	}
	return "", false
}

// TermCode identifies one (academic year, semester) pair as a single
// integer: 100*year + semester code. 201510 is Fall of the 2015-2016
// academic year.
type TermCode int

// NewTermCode builds the term code for an academic year and semester.
func NewTermCode(year int, s Semester) TermCode {
	return TermCode(100*year + s.Code())
}

// Year returns the academic year half of the term code.
func (t TermCode) Year() int {
	return int(t) / 100
}

// Semester returns the semester half of the term code.
func (t TermCode) Semester() (Semester, bool) {
	return SemesterFromCode(int(t) % 100)
}

func (t TermCode) String() string {
	return fmt.Sprintf("%d", int(t))
}

// Tag classifies a calendar event row.
type Tag string

const (
	TagInstruction  Tag = "Instruction"
	TagRegistration Tag = "Registration"
	TagHoliday      Tag = "Holiday"
)

// Tags is the set of tags carried by one event row.
type Tags []Tag

// Has reports whether the set contains the given tag.
func (ts Tags) Has(tag Tag) bool {
	for _, t := range ts {
		if t == tag {
			return true
		}
	}
	return false
}

// String renders the set in its comma-combined column form, e.g.
// "Instruction,Holiday".
func (ts Tags) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// Event is a single row of the assembled calendar table.
type Event struct {
	Term     TermCode
	Year     int
	Semester Semester
	Name     string
	Date     time.Time
	Tags     Tags
}

// Date builds a civil date. The calendar has no timezone semantics;
// all dates are pinned to midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
