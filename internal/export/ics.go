// Package export serializes the assembled calendar table for downstream
// consumers: an iCalendar feed, a CSV dump, and a human-readable table.
package export

import (
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"

	"acadcal/internal/model"
)

// ICS renders the rows as an iCalendar document with one all-day VEVENT
// per row. UIDs are stable across rebuilds (term code + event slug), so
// re-importing an updated feed replaces rather than duplicates events.
func ICS(events []model.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//acadcal//academic calendar//EN")

	for _, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("%s-%s@acadcal", ev.Term, slug(ev.Name)))
		ve.SetSummary(fmt.Sprintf("%s %s", ev.Semester, ev.Name))
		ve.SetAllDayStartAt(ev.Date)
		ve.SetAllDayEndAt(ev.Date.AddDate(0, 0, 1))
		// DTSTAMP must be present; the table is a pure function of the
		// year range, so the row date keeps the output deterministic.
		ve.SetDtStampTime(ev.Date)
		if len(ev.Tags) > 0 {
			ve.SetProperty(ical.ComponentPropertyCategories, ev.Tags.String())
		}
	}

	return cal.Serialize()
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
