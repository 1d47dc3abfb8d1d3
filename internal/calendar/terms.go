package calendar

import (
	"time"

	"acadcal/internal/model"
	"acadcal/internal/rule"
)

// Fixed term geometry, in days. Determined empirically from the published
// calendars alongside the recurrence rules in internal/rule.
const (
	termLength     = 116 // Fall and Spring: term start to finals end
	summerLength   = 68  // Summer: counted from SPRING start, see summerTerm
	christmasBreak = 24  // Fall finals end to Spring term start
)

// anchors holds the eight rule-produced dates for one academic year.
type anchors struct {
	fallStart       time.Time
	fallBreakStart  time.Time
	laborDay        time.Time
	thanksgiving    time.Time
	mlkDay          time.Time
	memorialDay     time.Time
	independenceDay time.Time
	springWithdraw  time.Time
}

// anchorsFor resolves every rule for one academic year. Resolution is a
// pure function of (rule, year), so anchors for different years never
// share state.
func anchorsFor(academicYear int) anchors {
	return anchors{
		fallStart:       rule.FallTermStart.DateFor(academicYear),
		fallBreakStart:  rule.FallBreakStart.DateFor(academicYear),
		laborDay:        rule.LaborDay.DateFor(academicYear),
		thanksgiving:    rule.Thanksgiving.DateFor(academicYear),
		mlkDay:          rule.MLKDay.DateFor(academicYear),
		memorialDay:     rule.MemorialDay.DateFor(academicYear),
		independenceDay: rule.IndependenceDay.DateFor(academicYear),
		springWithdraw:  rule.SpringWithdraw.DateFor(academicYear),
	}
}

func row(term model.TermCode, year int, sem model.Semester, name string, date time.Time, tags ...model.Tag) model.Event {
	return model.Event{
		Term:     term,
		Year:     year,
		Semester: sem,
		Name:     name,
		Date:     date,
		Tags:     model.Tags(tags),
	}
}

func days(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// fallTerm derives the Fall rows for one academic year and returns them
// with the fall end date the Spring term hangs off of.
//
// Term End is end-3, the same day Finals start; the published calendars
// list it that way, so it is reproduced as-is.
func fallTerm(year int, a anchors) ([]model.Event, time.Time) {
	term := model.NewTermCode(year, model.Fall)
	start := a.fallStart
	end := days(start, termLength)

	breakEnd := days(a.fallBreakStart, 1)
	thanksBreakStart := days(a.thanksgiving, -1)
	thanksBreakEnd := days(a.thanksgiving, 1)

	rows := []model.Event{
		row(term, year, model.Fall, "Term Start", start, model.TagInstruction),
		row(term, year, model.Fall, "Classes Start", start, model.TagInstruction),
		row(term, year, model.Fall, "Late Registration Start", start, model.TagRegistration),
		row(term, year, model.Fall, "Late Registration End", days(start, 4), model.TagRegistration),
		row(term, year, model.Fall, "Labor Day", a.laborDay, model.TagInstruction, model.TagHoliday),
		row(term, year, model.Fall, "Break Start", a.fallBreakStart, model.TagInstruction),
		row(term, year, model.Fall, "Break End", breakEnd, model.TagInstruction),
		row(term, year, model.Fall, "Withdraw Deadline", days(breakEnd, 1), model.TagRegistration),
		row(term, year, model.Fall, "Thanksgiving Break Start", thanksBreakStart, model.TagInstruction, model.TagHoliday),
		row(term, year, model.Fall, "Thanksgiving Break End", thanksBreakEnd, model.TagInstruction, model.TagHoliday),
		row(term, year, model.Fall, "Classes End", days(end, -4), model.TagInstruction),
		row(term, year, model.Fall, "Finals Start", days(end, -3), model.TagInstruction),
		row(term, year, model.Fall, "Finals End", end, model.TagInstruction),
		row(term, year, model.Fall, "Term End", days(end, -3), model.TagInstruction),
		row(term, year, model.Fall, "Final Grades Due", days(end, 3), model.TagRegistration),
	}
	return rows, end
}

// springTerm derives the Spring rows. Spring break starts 8 weeks into
// the term, except academic year 2013, whose published calendar placed
// it 9 weeks in; that one-time exception is kept as a literal special
// case.
func springTerm(year int, a anchors, fallEnd time.Time) ([]model.Event, time.Time, time.Time) {
	term := model.NewTermCode(year, model.Spring)
	start := days(fallEnd, christmasBreak)
	end := days(start, termLength)

	breakWeeks := 8
	if year == 2013 {
		breakWeeks = 9
	}
	breakStart := days(start, 7*breakWeeks)

	rows := []model.Event{
		row(term, year, model.Spring, "Term Start", start, model.TagInstruction),
		row(term, year, model.Spring, "Classes Start", start, model.TagInstruction),
		row(term, year, model.Spring, "MLK Day", a.mlkDay, model.TagInstruction, model.TagHoliday),
		row(term, year, model.Spring, "Break Start", breakStart, model.TagInstruction),
		row(term, year, model.Spring, "Break End", days(breakStart, 4), model.TagInstruction),
		row(term, year, model.Spring, "Withdraw Deadline", a.springWithdraw, model.TagRegistration),
		row(term, year, model.Spring, "Classes End", days(end, -4), model.TagInstruction),
		row(term, year, model.Spring, "Finals Start", days(end, -3), model.TagInstruction),
		row(term, year, model.Spring, "Finals End", end, model.TagInstruction),
		row(term, year, model.Spring, "Term End", end, model.TagInstruction),
		row(term, year, model.Spring, "Final Grades Due", days(end, 3), model.TagRegistration),
	}
	return rows, start, end
}

// summerTerm derives the Summer rows. Summer's end offsets from the
// SPRING start, not the Spring end; that is how the source calendars
// compute it, so it is preserved even though it places Term End before
// Term Start.
func summerTerm(year int, a anchors, springStart, springEnd time.Time) []model.Event {
	term := model.NewTermCode(year, model.Summer)
	start := days(springEnd, 10)
	end := days(springStart, summerLength)

	return []model.Event{
		row(term, year, model.Summer, "Term Start", start, model.TagInstruction),
		row(term, year, model.Summer, "Independence Day", a.independenceDay, model.TagInstruction, model.TagHoliday),
		row(term, year, model.Summer, "Term End", end, model.TagInstruction),
		row(term, year, model.Summer, "Final Grades Due", days(end, 3), model.TagRegistration),
	}
}
