// Package timeline holds the pure date rules for events: progress through a
// dated event, days remaining, status labels and display ordering.
//
// All arithmetic is done on calendar days in UTC, so results do not depend on
// the caller's time zone or on daylight-saving transitions.
package timeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/notrecocon/cocon/internal/models"
)

// ParseDate parses a "2006-01-02" calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", models.ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate renders the calendar date of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// Today returns the calendar date of now, in now's location, as midnight UTC.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
func DaysBetween(a, b time.Time) int {
	a = Today(a)
	b = Today(b)
	return int(b.Sub(a).Hours() / 24)
}

// Progress reports how far today is through a dated event, as a percentage in [0, 100].
//
// A single-day event reads 0 before its date and 100 from its date on.
// ok is false for the evergreen event and for events with unparseable dates.
func Progress(ev *models.Event, today time.Time) (percent float64, ok bool) {
	start, end, ok := bounds(ev)
	if !ok {
		return 0, false
	}
	total := DaysBetween(start, end)
	passed := DaysBetween(start, today)
	if total <= 0 {
		if passed >= 0 {
			return 100, true
		}
		return 0, true
	}
	passed = max(0, min(passed, total))
	return float64(passed) / float64(total) * 100, true
}

// DaysRemaining returns the whole days until the event's end date, never negative.
// ok is false for the evergreen event.
func DaysRemaining(ev *models.Event, today time.Time) (int, bool) {
	_, end, ok := bounds(ev)
	if !ok {
		return 0, false
	}
	return max(0, DaysBetween(today, end)), true
}

// Contains reports whether date falls inside the event.
// The evergreen event contains every date; dated events are inclusive on both ends.
func Contains(ev *models.Event, date time.Time) bool {
	if ev.IsEvergreen {
		return true
	}
	start, end, ok := bounds(ev)
	if !ok {
		return false
	}
	return DaysBetween(start, date) >= 0 && DaysBetween(date, end) >= 0
}

func bounds(ev *models.Event) (start, end time.Time, ok bool) {
	if ev == nil || ev.IsEvergreen {
		return time.Time{}, time.Time{}, false
	}
	start, err := ParseDate(ev.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = ParseDate(ev.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// StatusKind classifies where today falls relative to an event.
type StatusKind int

const (
	StatusOngoing StatusKind = iota
	StatusEnded
	StatusToday
	StatusRemaining
)

// Status is an event's state on a given day.
type Status struct {
	Kind StatusKind
	// Days is the number of days left; only set for StatusRemaining.
	Days int
}

// StatusOf computes the status of ev on today.
func StatusOf(ev *models.Event, today time.Time) Status {
	_, end, ok := bounds(ev)
	if !ok {
		return Status{Kind: StatusOngoing}
	}
	left := DaysBetween(today, end)
	switch {
	case left < 0:
		return Status{Kind: StatusEnded}
	case left == 0:
		return Status{Kind: StatusToday}
	default:
		return Status{Kind: StatusRemaining, Days: left}
	}
}

// Label renders the status the way the event list shows it.
func (s Status) Label() string {
	switch s.Kind {
	case StatusEnded:
		return "Ended"
	case StatusToday:
		return "Happening today"
	case StatusRemaining:
		if s.Days == 1 {
			return "1 day remaining"
		}
		return fmt.Sprintf("%d days remaining", s.Days)
	default:
		return "Ongoing"
	}
}

// SortEvents orders events for display: the evergreen event first, then by
// start date newest first, then by name. Equal events keep their relative order.
func SortEvents(events []*models.Event) {
	slices.SortStableFunc(events, compareEvents)
}

func compareEvents(a, b *models.Event) int {
	if a.IsEvergreen != b.IsEvergreen {
		if a.IsEvergreen {
			return -1
		}
		return 1
	}
	// "2006-01-02" strings sort chronologically.
	if c := strings.Compare(b.StartDate, a.StartDate); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
