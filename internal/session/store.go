package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/models"
)

// ErrUnknownEvent is returned when selecting an event that is not loaded.
var ErrUnknownEvent = errors.New("unknown event")

// Store holds the client state and is safe for concurrent use.
// Local state changes only after the server accepted a write; a failed write
// is recorded in State.Writes and can be re-issued with Retry.
type Store struct {
	gw    Gateway
	roles RoleStorage

	mu      sync.Mutex
	state   State
	retries map[string]func(context.Context) error
}

// NewStore creates an uninitialized Store.
func NewStore(gw Gateway, roles RoleStorage) *Store {
	if roles == nil {
		roles = &MemoryRoleStorage{}
	}
	return &Store{
		gw:      gw,
		roles:   roles,
		state:   State{Logs: map[string]*models.DailyLog{}, Writes: map[string]WriteStatus{}},
		retries: map[string]func(context.Context) error{},
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) dispatch(actions ...Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
}

func (s *Store) role() models.Role {
	return s.State().Role
}

// Initialize loads the server status, restores the stored role and loads the
// events. The store is marked initialized even when a step fails; the first
// failure is returned for reporting.
func (s *Store) Initialize(ctx context.Context) error {
	var firstErr error
	note := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	creds, err := s.roles.Load()
	if err != nil {
		slog.Warn("Failed to read stored role", "error", err)
		note(err)
		creds = Credentials{}
	}
	if !creds.Role.Valid() || creds.Token == "" {
		creds = Credentials{}
	}
	s.gw.SetToken(creds.Token)

	configured, err := s.gw.CodesConfigured(ctx)
	if err != nil {
		slog.Warn("Failed to load status", "error", err)
		note(err)
	}

	var events []*models.Event
	if creds.Role != "" {
		events, err = s.gw.ListEvents(ctx)
		switch {
		case errors.Is(err, ErrUnauthenticated):
			slog.Info("Stored session is no longer valid", "role", creds.Role)
			_ = s.forget()
			creds = Credentials{}
		case err != nil:
			slog.Warn("Failed to load events", "error", err)
			note(err)
		}
	}

	s.mu.Lock()
	s.retries = map[string]func(context.Context) error{}
	s.mu.Unlock()
	s.dispatch(Initialized{Role: creds.Role, CodesConfigured: configured, Events: events})
	return firstErr
}

// RefreshEvents reloads the event list.
func (s *Store) RefreshEvents(ctx context.Context) error {
	events, err := s.gw.ListEvents(ctx)
	if err != nil {
		return err
	}
	s.dispatch(EventsLoaded{Events: events})
	return nil
}

// SelectEvent makes eventID the active event and loads its logs.
// An empty id clears the selection.
func (s *Store) SelectEvent(ctx context.Context, eventID string) error {
	if eventID != "" {
		if _, ok := s.State().Event(eventID); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEvent, eventID)
		}
	}
	s.dispatch(EventSelected{EventID: eventID})
	if eventID == "" {
		return nil
	}

	logs, err := s.gw.ListLogs(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load logs: %w", err)
	}
	s.dispatch(LogsLoaded{EventID: eventID, Logs: logs})
	return nil
}

// AddEvent creates a dated event. Editor only.
func (s *Store) AddEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	if err := models.RequireEditor(s.role()); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var ev *models.Event
	err := s.write(ctx, eventWriteKey("new"), func(ctx context.Context) error {
		created, err := s.gw.AddEvent(ctx, in)
		if err != nil {
			return err
		}
		ev = created
		s.dispatch(EventSaved{Event: created})
		return nil
	})
	return ev, err
}

// UpdateEvent merges a partial update into an event. Editor only.
func (s *Store) UpdateEvent(ctx context.Context, eventID string, patch models.EventPatch) (*models.Event, error) {
	if err := models.RequireEditor(s.role()); err != nil {
		return nil, err
	}
	if ev, ok := s.State().Event(eventID); ok {
		if err := ev.CheckPatch(patch); err != nil {
			return nil, err
		}
	}

	var ev *models.Event
	err := s.write(ctx, eventWriteKey(eventID), func(ctx context.Context) error {
		updated, err := s.gw.UpdateEvent(ctx, eventID, patch)
		if err != nil {
			return err
		}
		ev = updated
		s.dispatch(EventSaved{Event: updated})
		return nil
	})
	return ev, err
}

// DeleteEvent removes an event with its logs. Editor only.
func (s *Store) DeleteEvent(ctx context.Context, eventID string) error {
	if err := models.RequireEditor(s.role()); err != nil {
		return err
	}
	if eventID == models.EvergreenEventID {
		return models.ErrEvergreenProtected
	}
	return s.write(ctx, eventWriteKey(eventID), func(ctx context.Context) error {
		if err := s.gw.DeleteEvent(ctx, eventID); err != nil {
			return err
		}
		s.dispatch(EventRemoved{EventID: eventID})
		return nil
	})
}

// dayKey builds the key for date within the selected event.
func (s *Store) dayKey(date string) (models.LogKey, error) {
	id := s.State().SelectedEventID
	if id == "" {
		return models.LogKey{}, ErrNoEventSelected
	}
	if !models.ValidDate(date) {
		return models.LogKey{}, fmt.Errorf("%w: %q", models.ErrInvalidDate, date)
	}
	return models.LogKey{EventID: id, Date: date}, nil
}

// UpsertLog merges patch into the selected event's log for date.
func (s *Store) UpsertLog(ctx context.Context, date string, patch models.LogPatch) (*models.DailyLog, error) {
	key, err := s.dayKey(date)
	if err != nil {
		return nil, err
	}
	if err := patch.CheckAuthor(s.role()); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrPermissionDenied, err)
	}
	return s.writeLog(ctx, key, func(ctx context.Context) (*models.DailyLog, error) {
		return s.gw.UpsertLog(ctx, key, patch)
	})
}

// AppendNote adds a note for the current role.
func (s *Store) AppendNote(ctx context.Context, date, text string) (*models.DailyLog, error) {
	key, err := s.dayKey(date)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("note text is required")
	}
	return s.writeLog(ctx, key, func(ctx context.Context) (*models.DailyLog, error) {
		return s.gw.AppendNote(ctx, key, text)
	})
}

// DeleteNote removes one note from a day.
func (s *Store) DeleteNote(ctx context.Context, date, noteID string) (*models.DailyLog, error) {
	key, err := s.dayKey(date)
	if err != nil {
		return nil, err
	}
	return s.writeLog(ctx, key, func(ctx context.Context) (*models.DailyLog, error) {
		return s.gw.DeleteNote(ctx, key, noteID)
	})
}

// UploadPhoto stores the current role's photo for a day.
func (s *Store) UploadPhoto(ctx context.Context, date string, data []byte, contentType, hint string) (*models.DailyLog, error) {
	key, err := s.dayKey(date)
	if err != nil {
		return nil, err
	}
	return s.writeLog(ctx, key, func(ctx context.Context) (*models.DailyLog, error) {
		return s.gw.UploadPhoto(ctx, key, data, contentType, hint)
	})
}

// DeletePhoto removes the current role's photo for a day.
func (s *Store) DeletePhoto(ctx context.Context, date string) (*models.DailyLog, error) {
	key, err := s.dayKey(date)
	if err != nil {
		return nil, err
	}
	return s.writeLog(ctx, key, func(ctx context.Context) (*models.DailyLog, error) {
		return s.gw.DeletePhoto(ctx, key)
	})
}

// ClearLog deletes a whole day. Editor only.
func (s *Store) ClearLog(ctx context.Context, date string) error {
	if err := models.RequireEditor(s.role()); err != nil {
		return err
	}
	key, err := s.dayKey(date)
	if err != nil {
		return err
	}
	return s.write(ctx, logWriteKey(key), func(ctx context.Context) error {
		if err := s.gw.ClearLog(ctx, key); err != nil {
			return err
		}
		s.dispatch(LogRemoved{Key: key})
		return nil
	})
}

func (s *Store) writeLog(ctx context.Context, key models.LogKey, call func(context.Context) (*models.DailyLog, error)) (*models.DailyLog, error) {
	var log *models.DailyLog
	err := s.write(ctx, logWriteKey(key), func(ctx context.Context) error {
		saved, err := call(ctx)
		if err != nil {
			return err
		}
		saved.Normalize()
		log = saved
		s.dispatch(LogSaved{Log: saved})
		return nil
	})
	return log, err
}

// GetLog returns the selected event's log for date.
func (s *Store) GetLog(date string) (*models.DailyLog, bool) {
	st := s.State()
	if st.SelectedEventID == "" {
		return nil, false
	}
	log, ok := st.Logs[date]
	return log, ok
}

// ResetAllAppData deletes every log and dated event. Editor only.
func (s *Store) ResetAllAppData(ctx context.Context) error {
	if err := models.RequireEditor(s.role()); err != nil {
		return err
	}
	return s.write(ctx, resetWriteKey, func(ctx context.Context) error {
		if err := s.gw.ResetAll(ctx); err != nil {
			return err
		}
		events, err := s.gw.ListEvents(ctx)
		if err != nil {
			slog.Warn("Failed to reload events after reset", "error", err)
			events = []*models.Event{models.NewEvergreenEvent()}
		}
		s.dispatch(DataReset{Events: events})
		return nil
	})
}

// AttemptLoginWithCode logs in with a shared access code. It reports false
// when codes are not configured, the code matches neither role, or the
// server cannot be reached.
func (s *Store) AttemptLoginWithCode(ctx context.Context, code string) bool {
	role, token, err := s.gw.Login(ctx, code)
	if err != nil {
		slog.Info("Login rejected", "error", err)
		return false
	}

	s.gw.SetToken(token)
	if err := s.roles.Save(Credentials{Role: role, Token: token}); err != nil {
		slog.Warn("Failed to store role", "error", err)
	}
	s.dispatch(RoleChanged{Role: role})

	if err := s.RefreshEvents(ctx); err != nil {
		slog.Warn("Failed to load events after login", "error", err)
	}
	return true
}

// Logout forgets the role here and in client-local storage.
func (s *Store) Logout() error {
	err := s.forget()
	s.dispatch(RoleChanged{Role: ""})
	return err
}

func (s *Store) forget() error {
	s.gw.SetToken("")
	if err := s.roles.Clear(); err != nil {
		return fmt.Errorf("failed to clear stored role: %w", err)
	}
	return nil
}

// LoadBucketList fetches the shared bucket list.
func (s *Store) LoadBucketList(ctx context.Context) error {
	items, err := s.gw.ListBucketItems(ctx)
	if err != nil {
		return err
	}
	s.dispatch(BucketLoaded{Items: items})
	return nil
}

// AddBucketItem adds an entry to the bucket list.
func (s *Store) AddBucketItem(ctx context.Context, text string) (*models.BucketListItem, error) {
	var item *models.BucketListItem
	err := s.write(ctx, bucketWriteKey("new"), func(ctx context.Context) error {
		added, err := s.gw.AddBucketItem(ctx, text)
		if err != nil {
			return err
		}
		item = added
		s.dispatch(BucketItemSaved{Item: added})
		return nil
	})
	return item, err
}

// ToggleBucketItem marks an entry done or not done.
func (s *Store) ToggleBucketItem(ctx context.Context, itemID string, completed bool) (*models.BucketListItem, error) {
	var item *models.BucketListItem
	err := s.write(ctx, bucketWriteKey(itemID), func(ctx context.Context) error {
		updated, err := s.gw.ToggleBucketItem(ctx, itemID, completed)
		if err != nil {
			return err
		}
		item = updated
		s.dispatch(BucketItemSaved{Item: updated})
		return nil
	})
	return item, err
}

// DeleteBucketItem removes an entry. Editor only.
func (s *Store) DeleteBucketItem(ctx context.Context, itemID string) error {
	if err := models.RequireEditor(s.role()); err != nil {
		return err
	}
	return s.write(ctx, bucketWriteKey(itemID), func(ctx context.Context) error {
		if err := s.gw.DeleteBucketItem(ctx, itemID); err != nil {
			return err
		}
		s.dispatch(BucketItemRemoved{ItemID: itemID})
		return nil
	})
}

// SuggestReplies asks the server for replies to a note. Nothing is stored.
func (s *Store) SuggestReplies(ctx context.Context, note string) ([]string, error) {
	return s.gw.SuggestReplies(ctx, note)
}

// ExtractSong looks up a song's title and artist from its link.
func (s *Store) ExtractSong(ctx context.Context, link string) (assistant.SongInfo, error) {
	return s.gw.SongDetails(ctx, link)
}

// write runs op under key, tracking it in State.Writes. A failed op is kept
// so Retry can run it again.
func (s *Store) write(ctx context.Context, key string, op func(context.Context) error) error {
	s.dispatch(WriteStarted{Key: key})

	err := op(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.retries[key] = op
		s.state = Reduce(s.state, WriteErrored{Key: key, Err: err})
		slog.Warn("Write failed", "key", key, "error", err)
		return err
	}
	delete(s.retries, key)
	s.state = Reduce(s.state, WriteSucceeded{Key: key})
	return nil
}

// Retry re-issues the last failed write under key.
func (s *Store) Retry(ctx context.Context, key string) error {
	s.mu.Lock()
	op, ok := s.retries[key]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoFailedWrite, key)
	}
	return s.write(ctx, key, op)
}
