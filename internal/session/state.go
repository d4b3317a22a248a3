// Package session is the client-side application state for Notre Cocon.
//
// State is an immutable value changed only by Reduce. Store owns the current
// State, performs server calls through a Gateway and dispatches the results.
package session

import (
	"maps"
	"slices"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/timeline"
)

// WriteState is the progress of one write.
type WriteState int

const (
	WritePending WriteState = iota + 1
	WriteFailed
)

// WriteStatus is the last known outcome of a write. Err is set when Failed.
type WriteStatus struct {
	State WriteState
	Err   error
}

// State is a snapshot of what the client knows. Values reachable from a
// State are never modified after it is produced.
type State struct {
	IsInitialized   bool
	Role            models.Role
	CodesConfigured bool
	Events          []*models.Event
	SelectedEventID string
	// Logs of the selected event, keyed by date.
	Logs        map[string]*models.DailyLog
	BucketItems []*models.BucketListItem
	// Writes holds in-flight and failed writes by key.
	Writes map[string]WriteStatus
}

// SelectedEvent returns the active event, if any.
func (s State) SelectedEvent() (*models.Event, bool) {
	if s.SelectedEventID == "" {
		return nil, false
	}
	return s.Event(s.SelectedEventID)
}

// Event looks up an event by id.
func (s State) Event(id string) (*models.Event, bool) {
	i := slices.IndexFunc(s.Events, func(ev *models.Event) bool { return ev.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.Events[i], true
}

// Action describes a change to State.
type Action interface {
	isAction()
}

type (
	// Initialized replaces the whole state after startup.
	Initialized struct {
		Role            models.Role
		CodesConfigured bool
		Events          []*models.Event
	}
	RoleChanged struct {
		Role models.Role
	}
	EventsLoaded struct {
		Events []*models.Event
	}
	// EventSelected changes the active event and drops the loaded logs.
	EventSelected struct {
		EventID string
	}
	// LogsLoaded is ignored unless EventID is still the selected event.
	LogsLoaded struct {
		EventID string
		Logs    []*models.DailyLog
	}
	EventSaved struct {
		Event *models.Event
	}
	EventRemoved struct {
		EventID string
	}
	LogSaved struct {
		Log *models.DailyLog
	}
	LogRemoved struct {
		Key models.LogKey
	}
	// DataReset leaves only the given events and clears the selection.
	DataReset struct {
		Events []*models.Event
	}
	BucketLoaded struct {
		Items []*models.BucketListItem
	}
	BucketItemSaved struct {
		Item *models.BucketListItem
	}
	BucketItemRemoved struct {
		ItemID string
	}
	WriteStarted struct {
		Key string
	}
	WriteSucceeded struct {
		Key string
	}
	WriteErrored struct {
		Key string
		Err error
	}
)

func (Initialized) isAction()       {}
func (RoleChanged) isAction()       {}
func (EventsLoaded) isAction()      {}
func (EventSelected) isAction()     {}
func (LogsLoaded) isAction()        {}
func (EventSaved) isAction()        {}
func (EventRemoved) isAction()      {}
func (LogSaved) isAction()          {}
func (LogRemoved) isAction()        {}
func (DataReset) isAction()         {}
func (BucketLoaded) isAction()      {}
func (BucketItemSaved) isAction()   {}
func (BucketItemRemoved) isAction() {}
func (WriteStarted) isAction()      {}
func (WriteSucceeded) isAction()    {}
func (WriteErrored) isAction()      {}

// Reduce returns the state that results from applying a to s.
// It does not modify s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Initialized:
		return State{
			IsInitialized:   true,
			Role:            a.Role,
			CodesConfigured: a.CodesConfigured,
			Events:          sortedEvents(a.Events),
			Logs:            map[string]*models.DailyLog{},
			Writes:          map[string]WriteStatus{},
		}

	case RoleChanged:
		s.Role = a.Role
		if a.Role == "" {
			s.Events = nil
			s.SelectedEventID = ""
			s.Logs = map[string]*models.DailyLog{}
			s.BucketItems = nil
		}

	case EventsLoaded:
		s.Events = sortedEvents(a.Events)
		if _, ok := s.Event(s.SelectedEventID); !ok {
			s.SelectedEventID = ""
			s.Logs = map[string]*models.DailyLog{}
		}

	case EventSelected:
		s.SelectedEventID = a.EventID
		s.Logs = map[string]*models.DailyLog{}

	case LogsLoaded:
		if a.EventID != s.SelectedEventID {
			return s
		}
		logs := make(map[string]*models.DailyLog, len(a.Logs))
		for _, l := range a.Logs {
			logs[l.Date] = l
		}
		s.Logs = logs

	case EventSaved:
		events := slices.DeleteFunc(slices.Clone(s.Events), func(ev *models.Event) bool { return ev.ID == a.Event.ID })
		s.Events = sortedEvents(append(events, a.Event))

	case EventRemoved:
		s.Events = slices.DeleteFunc(slices.Clone(s.Events), func(ev *models.Event) bool { return ev.ID == a.EventID })
		if s.SelectedEventID == a.EventID {
			s.SelectedEventID = ""
			s.Logs = map[string]*models.DailyLog{}
		}

	case LogSaved:
		if a.Log.EventID != s.SelectedEventID {
			return s
		}
		s.Logs = maps.Clone(s.Logs)
		if s.Logs == nil {
			s.Logs = map[string]*models.DailyLog{}
		}
		s.Logs[a.Log.Date] = a.Log

	case LogRemoved:
		if a.Key.EventID != s.SelectedEventID {
			return s
		}
		s.Logs = maps.Clone(s.Logs)
		delete(s.Logs, a.Key.Date)

	case DataReset:
		s.Events = sortedEvents(a.Events)
		s.SelectedEventID = ""
		s.Logs = map[string]*models.DailyLog{}

	case BucketLoaded:
		s.BucketItems = slices.Clone(a.Items)

	case BucketItemSaved:
		items := slices.Clone(s.BucketItems)
		if i := slices.IndexFunc(items, func(it *models.BucketListItem) bool { return it.ID == a.Item.ID }); i >= 0 {
			items[i] = a.Item
		} else {
			items = append([]*models.BucketListItem{a.Item}, items...)
		}
		s.BucketItems = items

	case BucketItemRemoved:
		s.BucketItems = slices.DeleteFunc(slices.Clone(s.BucketItems), func(it *models.BucketListItem) bool { return it.ID == a.ItemID })

	case WriteStarted:
		s.Writes = withWrite(s.Writes, a.Key, &WriteStatus{State: WritePending})

	case WriteSucceeded:
		s.Writes = withWrite(s.Writes, a.Key, nil)

	case WriteErrored:
		s.Writes = withWrite(s.Writes, a.Key, &WriteStatus{State: WriteFailed, Err: a.Err})
	}
	return s
}

func sortedEvents(events []*models.Event) []*models.Event {
	out := slices.Clone(events)
	timeline.SortEvents(out)
	return out
}

// withWrite returns a copy of writes with key set to st, or removed when st is nil.
func withWrite(writes map[string]WriteStatus, key string, st *WriteStatus) map[string]WriteStatus {
	out := maps.Clone(writes)
	if out == nil {
		out = map[string]WriteStatus{}
	}
	if st == nil {
		delete(out, key)
	} else {
		out[key] = *st
	}
	return out
}
