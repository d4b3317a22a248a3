package journal

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/blob"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
	"github.com/notrecocon/cocon/internal/storage/sqldb"
)

const (
	editor  = models.RoleEditor
	partner = models.RolePartner
)

func newTestJournal(t *testing.T) (*Journal, *blob.LocalStore) {
	t.Helper()
	store, err := sqldb.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	blobs := blob.NewLocalFs(afero.NewMemMapFs())
	return New(store, blobs), blobs
}

func strPtr(s string) *string { return &s }

func addJune(t *testing.T, j *Journal) *models.Event {
	t.Helper()
	ev, err := j.AddEvent(context.Background(), editor, models.EventInput{
		Name: "June", StartDate: "2024-06-01", EndDate: "2024-06-10",
	})
	require.NoError(t, err)
	return ev
}

func TestEvents(t *testing.T) {
	j, _ := newTestJournal(t)
	ctx := context.Background()

	t.Run("ListEvents creates the evergreen event once", func(t *testing.T) {
		for range 2 {
			events, err := j.ListEvents(ctx)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, models.EvergreenEventID, events[0].ID)
			assert.Equal(t, "Daily Life", events[0].Name)
			assert.True(t, events[0].IsEvergreen)
		}
	})

	t.Run("partner cannot add events", func(t *testing.T) {
		_, err := j.AddEvent(ctx, partner, models.EventInput{Name: "x", StartDate: "2024-01-01", EndDate: "2024-01-02"})
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
	})

	t.Run("AddEvent validates dates", func(t *testing.T) {
		_, err := j.AddEvent(ctx, editor, models.EventInput{Name: "x", StartDate: "2024-01-05", EndDate: "2024-01-02"})
		assert.ErrorIs(t, err, models.ErrInvalidDateRange)
		_, err = j.AddEvent(ctx, editor, models.EventInput{Name: "x"})
		assert.ErrorIs(t, err, models.ErrMissingDates)
	})

	t.Run("events are listed evergreen first then newest", func(t *testing.T) {
		addJune(t, j)
		_, err := j.AddEvent(ctx, editor, models.EventInput{Name: "July", StartDate: "2024-07-01", EndDate: "2024-07-05"})
		require.NoError(t, err)

		events, err := j.ListEvents(ctx)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{"Daily Life", "July", "June"}, []string{events[0].Name, events[1].Name, events[2].Name})
	})

	t.Run("evergreen can be renamed but not rescheduled or deleted", func(t *testing.T) {
		renamed, err := j.UpdateEvent(ctx, editor, models.EvergreenEventID, models.EventPatch{Name: strPtr("Us")})
		require.NoError(t, err)
		assert.Equal(t, "Us", renamed.Name)
		assert.True(t, renamed.IsEvergreen)

		_, err = j.UpdateEvent(ctx, editor, models.EvergreenEventID, models.EventPatch{StartDate: strPtr("2024-01-01")})
		assert.ErrorIs(t, err, models.ErrEvergreenProtected)

		err = j.DeleteEvent(ctx, editor, models.EvergreenEventID)
		assert.ErrorIs(t, err, models.ErrEvergreenProtected)
	})

	t.Run("UpdateEvent of a missing event", func(t *testing.T) {
		_, err := j.UpdateEvent(ctx, editor, "missing", models.EventPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLogs(t *testing.T) {
	j, _ := newTestJournal(t)
	ctx := context.Background()
	ev := addJune(t, j)
	key := models.LogKey{EventID: ev.ID, Date: "2024-06-05"}

	t.Run("each role writes its own fields", func(t *testing.T) {
		_, err := j.UpsertLog(ctx, editor, key, models.LogPatch{
			EditorNotes:      &[]string{"hi"},
			PromptForPartner: strPtr("what made you smile?"),
			Moods:            map[models.Role]*string{editor: strPtr("😊")},
		})
		require.NoError(t, err)

		log, err := j.UpsertLog(ctx, partner, key, models.LogPatch{
			PromptForEditor: strPtr("and you?"),
			Moods:           map[models.Role]*string{partner: strPtr("🥰")},
		})
		require.NoError(t, err)
		assert.Equal(t, "what made you smile?", log.PromptForPartner)
		assert.Equal(t, "and you?", log.PromptForEditor)
		assert.Equal(t, "😊", *log.Moods.Editor)
		assert.Equal(t, "🥰", *log.Moods.Partner)
	})

	t.Run("writing the other role's fields is denied", func(t *testing.T) {
		_, err := j.UpsertLog(ctx, partner, key, models.LogPatch{EditorNotes: &[]string{"sneaky"}})
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
		_, err = j.UpsertLog(ctx, editor, key, models.LogPatch{Moods: map[models.Role]*string{partner: nil}})
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
	})

	t.Run("dates outside the event are rejected", func(t *testing.T) {
		_, err := j.UpsertLog(ctx, editor, models.LogKey{EventID: ev.ID, Date: "2024-06-11"}, models.LogPatch{PromptForPartner: strPtr("x")})
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = j.AppendNote(ctx, editor, models.LogKey{EventID: ev.ID, Date: "not-a-date"}, "x")
		assert.ErrorIs(t, err, models.ErrInvalidDate)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := j.AppendNote(ctx, editor, models.LogKey{EventID: "nope", Date: "2024-06-05"}, "x")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("note deletion rules", func(t *testing.T) {
		log, err := j.AppendNote(ctx, partner, key, "  thinking of you  ")
		require.NoError(t, err)
		require.Len(t, log.PartnerNotes, 1)
		partnerNote := log.PartnerNotes[0]
		assert.Equal(t, "thinking of you", partnerNote.Text)
		editorNote := log.EditorNotes[0]

		_, err = j.DeleteNote(ctx, partner, key, editorNote.ID)
		assert.ErrorIs(t, err, models.ErrPermissionDenied)

		log, err = j.DeleteNote(ctx, editor, key, partnerNote.ID)
		require.NoError(t, err)
		assert.Empty(t, log.PartnerNotes)

		_, err = j.DeleteNote(ctx, editor, key, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("empty notes are rejected", func(t *testing.T) {
		_, err := j.AppendNote(ctx, editor, key, "   ")
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("only the editor clears a day", func(t *testing.T) {
		err := j.ClearLog(ctx, partner, key)
		assert.ErrorIs(t, err, models.ErrPermissionDenied)

		require.NoError(t, j.ClearLog(ctx, editor, key))
		logs, err := j.ListLogs(ctx, ev.ID)
		require.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("evergreen accepts any date", func(t *testing.T) {
		require.NoError(t, j.EnsureEvergreen(ctx))
		_, err := j.AppendNote(ctx, partner, models.LogKey{EventID: models.EvergreenEventID, Date: "1999-12-31"}, "party")
		require.NoError(t, err)
	})
}

func TestPhotos(t *testing.T) {
	j, blobs := newTestJournal(t)
	ctx := context.Background()
	ev := addJune(t, j)
	key := models.LogKey{EventID: ev.ID, Date: "2024-06-03"}
	data := []byte("\x89PNG fake")

	t.Run("rejects non-images and oversized uploads", func(t *testing.T) {
		_, err := j.UploadPhoto(ctx, editor, key, bytes.NewReader(data), int64(len(data)), "text/plain", "")
		assert.ErrorIs(t, err, ErrNotImage)
		_, err = j.UploadPhoto(ctx, editor, key, strings.NewReader("x"), MaxPhotoBytes+1, "image/png", "")
		assert.ErrorIs(t, err, ErrPhotoSize)
	})

	t.Run("upload then delete", func(t *testing.T) {
		log, err := j.UploadPhoto(ctx, partner, key, bytes.NewReader(data), int64(len(data)), "image/png", "beach")
		require.NoError(t, err)
		require.NotNil(t, log.Photos.Partner)
		assert.Equal(t, "/photos/dailyPhotos/"+ev.ID+"/2024-06-03/partner_photo", log.Photos.Partner.URL)
		assert.Equal(t, "beach", log.Photos.Partner.Hint)
		assert.Nil(t, log.Photos.Editor)

		rc, contentType, err := blobs.Get(ctx, blob.PhotoPath(key, partner))
		require.NoError(t, err)
		rc.Close()
		assert.Equal(t, "image/png", contentType)

		log, err = j.DeletePhoto(ctx, partner, key)
		require.NoError(t, err)
		assert.Nil(t, log.Photos.Partner)
		_, _, err = blobs.Get(ctx, blob.PhotoPath(key, partner))
		assert.ErrorIs(t, err, blob.ErrNotFound)
	})

	t.Run("photo URLs cannot be set directly", func(t *testing.T) {
		_, err := j.UpsertLog(ctx, editor, key, models.LogPatch{
			Photos: map[models.Role]*models.Photo{editor: {URL: "https://elsewhere.example/x.png"}},
		})
		assert.ErrorIs(t, err, models.ErrPermissionDenied)
	})

	t.Run("deleting the event removes its photos", func(t *testing.T) {
		_, err := j.UploadPhoto(ctx, editor, key, bytes.NewReader(data), int64(len(data)), "image/jpeg", "")
		require.NoError(t, err)
		require.NoError(t, j.DeleteEvent(ctx, editor, ev.ID))

		_, _, err = blobs.Get(ctx, blob.PhotoPath(key, editor))
		assert.ErrorIs(t, err, blob.ErrNotFound)
	})
}

func TestResetAll(t *testing.T) {
	j, _ := newTestJournal(t)
	ctx := context.Background()
	ev := addJune(t, j)

	_, err := j.AppendNote(ctx, editor, models.LogKey{EventID: ev.ID, Date: "2024-06-02"}, "x")
	require.NoError(t, err)
	_, err = j.AddBucketItem(ctx, partner, "Northern lights")
	require.NoError(t, err)

	assert.ErrorIs(t, j.ResetAll(ctx, partner), models.ErrPermissionDenied)
	require.NoError(t, j.ResetAll(ctx, editor))

	events, err := j.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsEvergreen)

	items, err := j.ListBucketItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBucketList(t *testing.T) {
	j, _ := newTestJournal(t)
	ctx := context.Background()

	item, err := j.AddBucketItem(ctx, partner, "  Visit Kyoto ")
	require.NoError(t, err)
	assert.Equal(t, "Visit Kyoto", item.Text)
	assert.Equal(t, partner, item.CreatedBy)

	_, err = j.AddBucketItem(ctx, editor, "")
	assert.ErrorIs(t, err, ErrEmptyText)

	toggled, err := j.ToggleBucketItem(ctx, partner, item.ID, true)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	err = j.DeleteBucketItem(ctx, partner, item.ID)
	assert.True(t, errors.Is(err, models.ErrPermissionDenied))
	require.NoError(t, j.DeleteBucketItem(ctx, editor, item.ID))

	_, err = j.AddBucketItem(ctx, "guest", "x")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
