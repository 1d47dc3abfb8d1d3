// Package calendar assembles the full academic-calendar table for a range
// of academic years and answers date queries against it.
package calendar

import (
	"errors"
	"fmt"
	"time"

	appLog "acadcal/internal/log"
	"acadcal/internal/model"
	"acadcal/internal/rule"
)

// ErrLookup marks a query for an unknown field, an out-of-range term
// code, or an unrecognized holiday name.
var ErrLookup = errors.New("calendar: lookup failed")

// Options configures a calendar build. Zero values select the defaults:
// StartYear 2012, EndYear the current calendar year plus two.
type Options struct {
	// StartYear is the first academic year to produce, inclusive.
	StartYear int
	// EndYear is the first academic year NOT produced (exclusive bound).
	EndYear int
}

// Calendar is the assembled table of every event row for the configured
// year range. It is built eagerly at construction and immutable after;
// rebuilding with identical options yields an identical table.
type Calendar struct {
	startYear int
	endYear   int
	events    []model.Event
	byTerm    map[model.TermCode]map[string]time.Time
}

// New builds the calendar for the configured range of academic years.
// EndYear must be strictly greater than StartYear once defaults are
// applied; a non-positive span fails with rule.ErrConfiguration.
func New(opts Options) (*Calendar, error) {
	if opts.StartYear == 0 {
		opts.StartYear = 2012
	}
	if opts.EndYear == 0 {
		opts.EndYear = time.Now().Year() + 2
	}
	if opts.EndYear <= opts.StartYear {
		return nil, fmt.Errorf("%w: empty year span [%d, %d)", rule.ErrConfiguration, opts.StartYear, opts.EndYear)
	}
	if opts.StartYear < 2012 {
		appLog.Warn("dates have not been validated prior to 2012", "start_year", opts.StartYear)
	}

	c := &Calendar{
		startYear: opts.StartYear,
		endYear:   opts.EndYear,
		byTerm:    make(map[model.TermCode]map[string]time.Time),
	}

	for yr := opts.StartYear; yr < opts.EndYear; yr++ {
		a := anchorsFor(yr)

		fallRows, fallEnd := fallTerm(yr, a)
		springRows, springStart, springEnd := springTerm(yr, a, fallEnd)
		summerRows := summerTerm(yr, a, springStart, springEnd)

		c.add(fallRows)
		c.add(springRows)
		c.add(summerRows)
	}

	appLog.Debug("calendar assembled",
		"start_year", c.startYear,
		"end_year", c.endYear,
		"rows", len(c.events),
	)
	return c, nil
}

func (c *Calendar) add(rows []model.Event) {
	for _, ev := range rows {
		fields, ok := c.byTerm[ev.Term]
		if !ok {
			fields = make(map[string]time.Time)
			c.byTerm[ev.Term] = fields
		}
		fields[ev.Name] = ev.Date
	}
	c.events = append(c.events, rows...)
}

// Events returns all rows, ordered by year, then term (Fall, Spring,
// Summer), then derivation order within the term.
func (c *Calendar) Events() []model.Event {
	return c.events
}

// Years returns the academic years covered, in order.
func (c *Calendar) Years() []int {
	years := make([]int, 0, c.endYear-c.startYear)
	for yr := c.startYear; yr < c.endYear; yr++ {
		years = append(years, yr)
	}
	return years
}

// Lookup resolves one named date of one term, e.g.
// Lookup(201510, "Classes Start"). The term code must decode to a
// semester and fall inside the configured year range, and the field must
// exist for that term; otherwise the lookup fails with ErrLookup.
func (c *Calendar) Lookup(term model.TermCode, field string) (time.Time, error) {
	yr := term.Year()
	if yr < c.startYear || yr >= c.endYear {
		return time.Time{}, fmt.Errorf("%w: term %s outside configured years [%d, %d)", ErrLookup, term, c.startYear, c.endYear)
	}
	if _, ok := term.Semester(); !ok {
		return time.Time{}, fmt.Errorf("%w: term %s has no valid semester code", ErrLookup, term)
	}
	fields, ok := c.byTerm[term]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: no rows for term %s", ErrLookup, term)
	}
	d, ok := fields[field]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown field %q for term %s", ErrLookup, field, term)
	}
	return d, nil
}

// holidayRules maps recognized holiday names to their rules. Resolution
// is by explicit table, never by reflection over method names.
var holidayRules = map[string]rule.Rule{
	rule.Thanksgiving.Name:    rule.Thanksgiving,
	rule.LaborDay.Name:        rule.LaborDay,
	rule.MLKDay.Name:          rule.MLKDay,
	rule.MemorialDay.Name:     rule.MemorialDay,
	rule.IndependenceDay.Name: rule.IndependenceDay,
}

// Holiday resolves a holiday by name for an academic year. Holidays that
// fall in the spring half of the year (January through July) resolve
// against the following calendar year: Holiday("MLK Day", 2019) is the
// January 2020 date. Unrecognized names fail with ErrLookup.
func (c *Calendar) Holiday(name string, academicYear int) (time.Time, error) {
	r, ok := holidayRules[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unrecognized holiday %q", ErrLookup, name)
	}
	return r.DateFor(academicYear), nil
}
