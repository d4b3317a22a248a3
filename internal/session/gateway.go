package session

import (
	"context"
	"errors"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/models"
)

var (
	ErrNoEventSelected = errors.New("no event selected")
	ErrUnauthenticated = errors.New("not logged in or session expired")
	ErrNoFailedWrite   = errors.New("no failed write to retry")
)

// Gateway is the server as seen by the Store.
type Gateway interface {
	CodesConfigured(ctx context.Context) (bool, error)
	// Login returns the role unlocked by code and a bearer token for it.
	Login(ctx context.Context, code string) (models.Role, string, error)
	// SetToken changes the bearer token used by later calls.
	SetToken(token string)

	ListEvents(ctx context.Context) ([]*models.Event, error)
	AddEvent(ctx context.Context, in models.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID string, patch models.EventPatch) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error

	ListLogs(ctx context.Context, eventID string) ([]*models.DailyLog, error)
	UpsertLog(ctx context.Context, key models.LogKey, patch models.LogPatch) (*models.DailyLog, error)
	AppendNote(ctx context.Context, key models.LogKey, text string) (*models.DailyLog, error)
	DeleteNote(ctx context.Context, key models.LogKey, noteID string) (*models.DailyLog, error)
	ClearLog(ctx context.Context, key models.LogKey) error
	UploadPhoto(ctx context.Context, key models.LogKey, data []byte, contentType, hint string) (*models.DailyLog, error)
	DeletePhoto(ctx context.Context, key models.LogKey) (*models.DailyLog, error)
	ResetAll(ctx context.Context) error

	ListBucketItems(ctx context.Context) ([]*models.BucketListItem, error)
	AddBucketItem(ctx context.Context, text string) (*models.BucketListItem, error)
	ToggleBucketItem(ctx context.Context, itemID string, completed bool) (*models.BucketListItem, error)
	DeleteBucketItem(ctx context.Context, itemID string) error

	SuggestReplies(ctx context.Context, note string) ([]string, error)
	SongDetails(ctx context.Context, link string) (assistant.SongInfo, error)
}

// Credentials is what survives between runs of a client.
type Credentials struct {
	Role  models.Role
	Token string
}

// RoleStorage keeps Credentials in client-local storage.
// Load returns zero Credentials when nothing is stored.
type RoleStorage interface {
	Load() (Credentials, error)
	Save(c Credentials) error
	Clear() error
}

// MemoryRoleStorage is a RoleStorage that forgets everything on exit.
type MemoryRoleStorage struct {
	c Credentials
}

func (m *MemoryRoleStorage) Load() (Credentials, error) { return m.c, nil }
func (m *MemoryRoleStorage) Save(c Credentials) error   { m.c = c; return nil }
func (m *MemoryRoleStorage) Clear() error               { m.c = Credentials{}; return nil }

// Write keys group the writes shown in State.Writes.
func eventWriteKey(id string) string          { return "event:" + id }
func logWriteKey(key models.LogKey) string { return "log:" + key.String() }
func bucketWriteKey(id string) string      { return "bucket:" + id }

const resetWriteKey = "reset"
