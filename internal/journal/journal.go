// Package journal is the server-side authority for Notre Cocon data.
//
// It enforces who may do what (the editor manages events, each role writes
// only its own fields), keeps the evergreen "Daily Life" event intact, and
// keeps stored photos in step with the logs that reference them. Persistence
// is delegated to a storage.Store and a blob.Store.
package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/notrecocon/cocon/internal/blob"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
	"github.com/notrecocon/cocon/internal/timeline"
)

var (
	ErrOutOfRange  = errors.New("date is outside the event")
	ErrEmptyText   = errors.New("text is required")
	ErrNotImage    = errors.New("only image uploads are allowed")
	ErrPhotoSize   = errors.New("photo must be between 1 byte and 5 MiB")
	ErrUnknownRole = errors.New("unknown role")
)

// MaxPhotoBytes is the largest photo accepted by UploadPhoto.
const MaxPhotoBytes = 5 << 20

// Journal applies the app's rules on top of storage.
type Journal struct {
	store storage.Store
	blobs blob.Store
	now   func() time.Time
}

// New creates a Journal.
func New(store storage.Store, blobs blob.Store) *Journal {
	return &Journal{store: store, blobs: blobs, now: time.Now}
}

// EnsureEvergreen creates the "Daily Life" event if it does not exist yet.
func (j *Journal) EnsureEvergreen(ctx context.Context) error {
	_, err := j.store.GetEvent(ctx, models.EvergreenEventID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to look up evergreen event: %w", err)
	}

	if err := j.store.CreateEvent(ctx, models.NewEvergreenEvent()); err != nil {
		// Another request may have created it first.
		if _, getErr := j.store.GetEvent(ctx, models.EvergreenEventID); getErr == nil {
			return nil
		}
		return fmt.Errorf("failed to create evergreen event: %w", err)
	}
	slog.Info("Evergreen event created", "event_id", models.EvergreenEventID)
	return nil
}

// ListEvents returns every event in display order, creating the evergreen
// event first if needed.
func (j *Journal) ListEvents(ctx context.Context) ([]*models.Event, error) {
	if err := j.EnsureEvergreen(ctx); err != nil {
		return nil, err
	}
	events, err := j.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	timeline.SortEvents(events)
	return events, nil
}

// AddEvent creates a dated event. Editor only.
func (j *Journal) AddEvent(ctx context.Context, role models.Role, in models.EventInput) (*models.Event, error) {
	if err := models.RequireEditor(role); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ev := &models.Event{
		Name:      strings.TrimSpace(in.Name),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedBy: role,
	}
	if err := j.store.CreateEvent(ctx, ev); err != nil {
		return nil, err
	}
	slog.Info("Event created", "event_id", ev.ID, "name", ev.Name)
	return ev, nil
}

// UpdateEvent merges a partial update into an event. Editor only.
// The evergreen event may be renamed but never rescheduled.
func (j *Journal) UpdateEvent(ctx context.Context, role models.Role, eventID string, patch models.EventPatch) (*models.Event, error) {
	if err := models.RequireEditor(role); err != nil {
		return nil, err
	}
	ev, err := j.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := ev.CheckPatch(patch); err != nil {
		return nil, err
	}

	updated := ev.Apply(patch)
	if err := j.store.UpdateEvent(ctx, updated); err != nil {
		return nil, err
	}
	slog.Info("Event updated", "event_id", updated.ID)
	return updated, nil
}

// DeleteEvent removes a dated event with all of its logs and photos. Editor only.
func (j *Journal) DeleteEvent(ctx context.Context, role models.Role, eventID string) error {
	if err := models.RequireEditor(role); err != nil {
		return err
	}
	if eventID == models.EvergreenEventID {
		return models.ErrEvergreenProtected
	}

	logs, err := j.store.ListLogsByEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if err := j.store.DeleteEventCascade(ctx, eventID); err != nil {
		return err
	}
	j.deletePhotos(ctx, logs...)
	slog.Info("Event deleted", "event_id", eventID, "logs", len(logs))
	return nil
}

// ResetAll deletes every log and every dated event, leaving only an empty
// evergreen event. The bucket list is kept. Editor only.
func (j *Journal) ResetAll(ctx context.Context, role models.Role) error {
	if err := models.RequireEditor(role); err != nil {
		return err
	}

	events, err := j.store.ListEvents(ctx)
	if err != nil {
		return err
	}
	var logs []*models.DailyLog
	for _, ev := range events {
		evLogs, err := j.store.ListLogsByEvent(ctx, ev.ID)
		if err != nil {
			return err
		}
		logs = append(logs, evLogs...)
	}

	if err := j.store.ResetAll(ctx, models.EvergreenEventID); err != nil {
		return err
	}
	j.deletePhotos(ctx, logs...)
	slog.Warn("All journal data reset", "events", len(events), "logs", len(logs))
	return j.EnsureEvergreen(ctx)
}

func requireRole(role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return nil
}
