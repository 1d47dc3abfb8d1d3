package rule

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var (
	// ErrConfiguration marks an invalid generator window or year span.
	ErrConfiguration = errors.New("rule: invalid configuration")

	// ErrExhausted marks a draw past the end of a generator's window.
	// It always indicates a logic bug in the caller (a mismatch between
	// the year span and the number of draws), never a retryable state.
	ErrExhausted = errors.New("rule: generator exhausted")
)

// Window bounds a generator: occurrences on or after Start, limited by
// exactly one of Count (number of occurrences) or Until (last admissible
// date). Supplying both or neither is a configuration error.
type Window struct {
	Start time.Time
	Count int
	Until time.Time
}

// Generator is a forward-only sequence of the concrete dates a rule
// produces within a window, one per year in increasing order. Each
// instance is single-pass: every Next call consumes one occurrence.
//
// The calendar assembler resolves anchors through the pure DateFor
// accessor instead of drawing from generators; this sequential view is
// the library's windowed query surface, and the two are cross-checked
// against each other in tests.
type Generator struct {
	rule Rule
	next rrule.Next
}

// Generator builds the windowed sequence for the rule.
func (r Rule) Generator(w Window) (*Generator, error) {
	if w.Start.IsZero() {
		return nil, fmt.Errorf("%w: window start is required", ErrConfiguration)
	}
	hasCount := w.Count != 0
	hasUntil := !w.Until.IsZero()
	switch {
	case hasCount && hasUntil:
		return nil, fmt.Errorf("%w: both count and until supplied", ErrConfiguration)
	case !hasCount && !hasUntil:
		return nil, fmt.Errorf("%w: neither count nor until supplied", ErrConfiguration)
	case hasCount && w.Count < 0:
		return nil, fmt.Errorf("%w: negative count %d", ErrConfiguration, w.Count)
	}

	opt := rrule.ROption{
		Freq:    rrule.YEARLY,
		Dtstart: w.Start,
		Bymonth: []int{int(r.Month)},
	}
	if r.Ordinal != 0 {
		wd := rruleWeekday(r.Weekday)
		opt.Byweekday = []rrule.Weekday{wd.Nth(r.Ordinal)}
	} else {
		opt.Bymonthday = []int{r.Day}
	}
	if hasCount {
		opt.Count = w.Count
	} else {
		opt.Until = w.Until
	}

	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return &Generator{rule: r, next: rr.Iterator()}, nil
}

// Next returns the next scheduled date, consuming it. Draws past the
// window fail with ErrExhausted.
func (g *Generator) Next() (time.Time, error) {
	t, ok := g.next()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrExhausted, g.rule.Name)
	}
	return t, nil
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
