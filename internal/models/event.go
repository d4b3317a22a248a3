package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for every date field.
const DateLayout = "2006-01-02"

const (
	// EvergreenEventID is the fixed ID of the always-open "Daily Life" event.
	EvergreenEventID = "daily-life"
	// EvergreenEventName is the display name of the evergreen event.
	EvergreenEventName = "Daily Life"
)

// Event is a named space that daily logs belong to.
// Dated events cover an inclusive date range; the evergreen event has no dates.
type Event struct {
	// ID is the unique identifier for the event (UUID format, or EvergreenEventID).
	ID string

	// Name is the display name (e.g., "Summer in Lisbon").
	Name string

	// StartDate and EndDate are calendar dates ("2006-01-02").
	// Both are empty for the evergreen event.
	StartDate string
	EndDate   string

	// IsEvergreen marks the single always-open event. It never changes after creation.
	IsEvergreen bool

	// CreatedBy is the role that created the event. Informational only.
	CreatedBy Role

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// NewEvergreenEvent returns the "Daily Life" event as it is created on first load.
func NewEvergreenEvent() *Event {
	return &Event{
		ID:          EvergreenEventID,
		Name:        EvergreenEventName,
		IsEvergreen: true,
		CreatedBy:   RoleEditor,
		CreatedAt:   time.Now().Unix(),
	}
}

// EventInput carries the fields needed to create a dated event.
type EventInput struct {
	Name      string
	StartDate string
	EndDate   string
	CreatedBy Role
}

// Validate checks that the input describes a well-formed dated event.
func (in EventInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if in.StartDate == "" || in.EndDate == "" {
		return ErrMissingDates
	}
	return validateRange(in.StartDate, in.EndDate)
}

// EventPatch is a partial update of an event. Nil fields are left untouched.
type EventPatch struct {
	Name        *string
	StartDate   *string
	EndDate     *string
	IsEvergreen *bool
}

// TouchesSchedule reports whether the patch changes dates or the evergreen flag.
func (p EventPatch) TouchesSchedule() bool {
	return p.StartDate != nil || p.EndDate != nil || p.IsEvergreen != nil
}

// IsEmpty reports whether the patch changes nothing.
func (p EventPatch) IsEmpty() bool {
	return p.Name == nil && !p.TouchesSchedule()
}

// CheckPatch validates a patch against the event it would be applied to.
func (e *Event) CheckPatch(p EventPatch) error {
	if e.IsEvergreen && p.TouchesSchedule() {
		return ErrEvergreenProtected
	}
	if p.IsEvergreen != nil && *p.IsEvergreen {
		return fmt.Errorf("%w: only one evergreen event may exist", ErrEvergreenProtected)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrEmptyName
	}
	if !p.TouchesSchedule() {
		return nil
	}
	start, end := e.StartDate, e.EndDate
	if p.StartDate != nil {
		start = *p.StartDate
	}
	if p.EndDate != nil {
		end = *p.EndDate
	}
	if start == "" || end == "" {
		return ErrMissingDates
	}
	return validateRange(start, end)
}

// Apply returns a copy of the event with the patch merged in.
// Callers are expected to run CheckPatch first.
func (e *Event) Apply(p EventPatch) *Event {
	updated := *e
	if p.Name != nil {
		updated.Name = strings.TrimSpace(*p.Name)
	}
	if p.StartDate != nil {
		updated.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		updated.EndDate = *p.EndDate
	}
	if p.IsEvergreen != nil {
		updated.IsEvergreen = *p.IsEvergreen
	}
	return &updated
}

// ValidDate reports whether s is a calendar date in DateLayout form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func validateRange(start, end string) error {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return fmt.Errorf("%w: start date %q", ErrInvalidDate, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return fmt.Errorf("%w: end date %q", ErrInvalidDate, end)
	}
	if s.After(e) {
		return ErrInvalidDateRange
	}
	return nil
}
