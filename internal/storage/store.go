// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/notrecocon/cocon/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for journal storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the journal service.
type Store interface {
	// GetSettings returns the access-code settings.
	// Returns ErrNotFound if no codes have ever been saved.
	GetSettings(ctx context.Context) (*models.AppSettings, error)

	// SaveSettings creates or replaces the settings record.
	SaveSettings(ctx context.Context, settings *models.AppSettings) error

	// ListEvents returns all events in no particular order.
	ListEvents(ctx context.Context) ([]*models.Event, error)

	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// CreateEvent persists a new event. The event.ID and CreatedAt fields are
	// populated by the store when empty.
	CreateEvent(ctx context.Context, event *models.Event) error

	// UpdateEvent overwrites an existing event.
	// Returns ErrNotFound if the event does not exist.
	UpdateEvent(ctx context.Context, event *models.Event) error

	// DeleteEventCascade removes an event together with its logs and notes
	// in a single transaction.
	DeleteEventCascade(ctx context.Context, eventID string) error

	// ListLogsByEvent returns every log of an event ordered by date.
	ListLogsByEvent(ctx context.Context, eventID string) ([]*models.DailyLog, error)

	// GetLog retrieves one log. Returns ErrNotFound if nothing was written yet.
	GetLog(ctx context.Context, key models.LogKey) (*models.DailyLog, error)

	// UpsertLog merges patch into the log at key, creating it if needed,
	// and returns the stored result.
	UpsertLog(ctx context.Context, key models.LogKey, patch models.LogPatch) (*models.DailyLog, error)

	// AppendNote adds a note to the author's list for the log at key,
	// creating the log if needed. The note.ID is populated when empty.
	AppendNote(ctx context.Context, key models.LogKey, note *models.Note) (*models.DailyLog, error)

	// DeleteNote removes a single note. Returns ErrNotFound if it does not exist.
	DeleteNote(ctx context.Context, key models.LogKey, noteID string) (*models.DailyLog, error)

	// ClearLog removes the log at key and all of its notes.
	ClearLog(ctx context.Context, key models.LogKey) error

	// ResetAll deletes every log and note, and every event except keepEventID,
	// in a single transaction. The bucket list is left alone.
	ResetAll(ctx context.Context, keepEventID string) error

	// ListBucketItems returns the bucket list, newest first.
	ListBucketItems(ctx context.Context) ([]*models.BucketListItem, error)

	// CreateBucketItem persists a new item. The item.ID is populated when empty.
	CreateBucketItem(ctx context.Context, item *models.BucketListItem) error

	// SetBucketItemCompleted updates the completion flag and returns the item.
	SetBucketItemCompleted(ctx context.Context, itemID string, completed bool) (*models.BucketListItem, error)

	// DeleteBucketItem removes an item. Returns ErrNotFound if it does not exist.
	DeleteBucketItem(ctx context.Context, itemID string) error

	// Close releases any resources held by the store.
	Close() error
}
