package sqldb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "cocon-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := OpenSQLite(context.Background(), filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func strPtr(s string) *string { return &s }

func TestSQLiteStoreEvents(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	t.Run("CreateEvent generates ID and timestamp", func(t *testing.T) {
		ev := &models.Event{Name: "Lisbon", StartDate: "2024-06-01", EndDate: "2024-06-10", CreatedBy: models.RoleEditor}
		if err := store.CreateEvent(ctx, ev); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if ev.ID == "" {
			t.Error("Expected event ID to be generated")
		}
		if ev.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetEvent(ctx, ev.ID)
		if err != nil {
			t.Fatalf("GetEvent failed: %v", err)
		}
		if got.Name != "Lisbon" || got.StartDate != "2024-06-01" || got.EndDate != "2024-06-10" || got.IsEvergreen {
			t.Errorf("GetEvent = %+v", got)
		}
	})

	t.Run("evergreen event stores null dates", func(t *testing.T) {
		if err := store.CreateEvent(ctx, models.NewEvergreenEvent()); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		got, err := store.GetEvent(ctx, models.EvergreenEventID)
		if err != nil {
			t.Fatalf("GetEvent failed: %v", err)
		}
		if !got.IsEvergreen || got.StartDate != "" || got.EndDate != "" {
			t.Errorf("evergreen = %+v", got)
		}
	})

	t.Run("UpdateEvent of missing event returns ErrNotFound", func(t *testing.T) {
		err := store.UpdateEvent(ctx, &models.Event{ID: "missing", Name: "x"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateEvent error = %v, want ErrNotFound", err)
		}
	})

	t.Run("GetEvent of missing event returns ErrNotFound", func(t *testing.T) {
		if _, err := store.GetEvent(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetEvent error = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteStoreLogs(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	ev := &models.Event{Name: "June", StartDate: "2024-06-01", EndDate: "2024-06-10", CreatedBy: models.RoleEditor}
	if err := store.CreateEvent(ctx, ev); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	key := models.LogKey{EventID: ev.ID, Date: "2024-06-05"}

	t.Run("GetLog before any write returns ErrNotFound", func(t *testing.T) {
		if _, err := store.GetLog(ctx, key); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetLog error = %v, want ErrNotFound", err)
		}
	})

	t.Run("UpsertLog replaces the whole notes list", func(t *testing.T) {
		if _, err := store.UpsertLog(ctx, key, models.LogPatch{EditorNotes: &[]string{"hi"}}); err != nil {
			t.Fatalf("UpsertLog failed: %v", err)
		}
		if _, err := store.UpsertLog(ctx, key, models.LogPatch{EditorNotes: &[]string{"hi", "there"}}); err != nil {
			t.Fatalf("UpsertLog failed: %v", err)
		}

		got, err := store.GetLog(ctx, key)
		if err != nil {
			t.Fatalf("GetLog failed: %v", err)
		}
		if len(got.EditorNotes) != 2 || got.EditorNotes[0].Text != "hi" || got.EditorNotes[1].Text != "there" {
			t.Errorf("EditorNotes = %+v, want [hi there]", got.EditorNotes)
		}
		if got.PartnerNotes == nil || len(got.PartnerNotes) != 0 {
			t.Errorf("PartnerNotes = %#v, want empty list", got.PartnerNotes)
		}
	})

	t.Run("UpsertLog merges fields from both roles", func(t *testing.T) {
		if _, err := store.UpsertLog(ctx, key, models.LogPatch{
			Moods:            map[models.Role]*string{models.RoleEditor: strPtr("😊")},
			PromptForPartner: strPtr("best moment?"),
			Songs:            map[models.Role]*models.Song{models.RoleEditor: {Link: "https://open.spotify.com/track/1", Title: "T", Artist: "A"}},
		}); err != nil {
			t.Fatalf("UpsertLog failed: %v", err)
		}
		got, err := store.UpsertLog(ctx, key, models.LogPatch{
			Moods:           map[models.Role]*string{models.RolePartner: strPtr("🥰")},
			PromptForEditor: strPtr("and yours?"),
			Photos:          map[models.Role]*models.Photo{models.RolePartner: {URL: "/photos/p.jpg", Hint: "sunset"}},
		})
		if err != nil {
			t.Fatalf("UpsertLog failed: %v", err)
		}

		reloaded, err := store.GetLog(ctx, key)
		if err != nil {
			t.Fatalf("GetLog failed: %v", err)
		}
		for name, log := range map[string]*models.DailyLog{"returned": got, "reloaded": reloaded} {
			if log.Moods.Editor == nil || *log.Moods.Editor != "😊" {
				t.Errorf("%s: editor mood lost", name)
			}
			if log.Moods.Partner == nil || *log.Moods.Partner != "🥰" {
				t.Errorf("%s: partner mood missing", name)
			}
			if log.Songs.Editor == nil || log.Songs.Editor.Artist != "A" {
				t.Errorf("%s: editor song = %+v", name, log.Songs.Editor)
			}
			if log.Photos.Partner == nil || log.Photos.Partner.Hint != "sunset" {
				t.Errorf("%s: partner photo = %+v", name, log.Photos.Partner)
			}
			if log.PromptForPartner != "best moment?" || log.PromptForEditor != "and yours?" {
				t.Errorf("%s: prompts = %q / %q", name, log.PromptForPartner, log.PromptForEditor)
			}
			if len(log.EditorNotes) != 2 {
				t.Errorf("%s: editor notes dropped by unrelated patch: %+v", name, log.EditorNotes)
			}
		}
	})

	t.Run("AppendNote and DeleteNote", func(t *testing.T) {
		note := &models.Note{Author: models.RolePartner, Text: "miss you"}
		log, err := store.AppendNote(ctx, key, note)
		if err != nil {
			t.Fatalf("AppendNote failed: %v", err)
		}
		if note.ID == "" || len(log.PartnerNotes) != 1 {
			t.Fatalf("AppendNote: note = %+v, partner notes = %+v", note, log.PartnerNotes)
		}
		second := &models.Note{Author: models.RolePartner, Text: "see you soon"}
		if _, err := store.AppendNote(ctx, key, second); err != nil {
			t.Fatalf("AppendNote failed: %v", err)
		}

		log, err = store.DeleteNote(ctx, key, note.ID)
		if err != nil {
			t.Fatalf("DeleteNote failed: %v", err)
		}
		if len(log.PartnerNotes) != 1 || log.PartnerNotes[0].ID != second.ID {
			t.Errorf("PartnerNotes after delete = %+v", log.PartnerNotes)
		}

		if _, err := store.DeleteNote(ctx, key, note.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second DeleteNote error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListLogsByEvent orders by date", func(t *testing.T) {
		earlier := models.LogKey{EventID: ev.ID, Date: "2024-06-02"}
		if _, err := store.AppendNote(ctx, earlier, &models.Note{Author: models.RoleEditor, Text: "day two"}); err != nil {
			t.Fatalf("AppendNote failed: %v", err)
		}
		logs, err := store.ListLogsByEvent(ctx, ev.ID)
		if err != nil {
			t.Fatalf("ListLogsByEvent failed: %v", err)
		}
		if len(logs) != 2 || logs[0].Date != "2024-06-02" || logs[1].Date != "2024-06-05" {
			t.Fatalf("ListLogsByEvent = %d logs", len(logs))
		}
		if len(logs[0].EditorNotes) != 1 || len(logs[1].EditorNotes) != 2 || len(logs[1].PartnerNotes) != 1 {
			t.Errorf("notes not attached to the right logs")
		}
	})

	t.Run("ClearLog removes the day", func(t *testing.T) {
		if err := store.ClearLog(ctx, key); err != nil {
			t.Fatalf("ClearLog failed: %v", err)
		}
		if _, err := store.GetLog(ctx, key); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetLog after clear error = %v, want ErrNotFound", err)
		}
	})
}

func TestSQLiteStoreCascadeAndReset(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	if err := store.CreateEvent(ctx, models.NewEvergreenEvent()); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	trip := &models.Event{Name: "Trip", StartDate: "2024-07-01", EndDate: "2024-07-03", CreatedBy: models.RoleEditor}
	if err := store.CreateEvent(ctx, trip); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	for _, key := range []models.LogKey{
		{EventID: trip.ID, Date: "2024-07-01"},
		{EventID: models.EvergreenEventID, Date: "2024-07-01"},
	} {
		if _, err := store.AppendNote(ctx, key, &models.Note{Author: models.RoleEditor, Text: "x"}); err != nil {
			t.Fatalf("AppendNote failed: %v", err)
		}
	}
	if err := store.CreateBucketItem(ctx, &models.BucketListItem{Text: "Paris", CreatedBy: models.RolePartner}); err != nil {
		t.Fatalf("CreateBucketItem failed: %v", err)
	}

	t.Run("DeleteEventCascade removes the event's logs only", func(t *testing.T) {
		if err := store.DeleteEventCascade(ctx, trip.ID); err != nil {
			t.Fatalf("DeleteEventCascade failed: %v", err)
		}
		if logs, _ := store.ListLogsByEvent(ctx, trip.ID); len(logs) != 0 {
			t.Errorf("trip still has %d logs", len(logs))
		}
		if logs, _ := store.ListLogsByEvent(ctx, models.EvergreenEventID); len(logs) != 1 {
			t.Errorf("evergreen has %d logs, want 1", len(logs))
		}
		if err := store.DeleteEventCascade(ctx, trip.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ResetAll keeps the evergreen event and the bucket list", func(t *testing.T) {
		other := &models.Event{Name: "Other", StartDate: "2024-08-01", EndDate: "2024-08-02", CreatedBy: models.RoleEditor}
		if err := store.CreateEvent(ctx, other); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if err := store.ResetAll(ctx, models.EvergreenEventID); err != nil {
			t.Fatalf("ResetAll failed: %v", err)
		}

		events, err := store.ListEvents(ctx)
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 1 || events[0].ID != models.EvergreenEventID {
			t.Errorf("events after reset = %+v", events)
		}
		if logs, _ := store.ListLogsByEvent(ctx, models.EvergreenEventID); len(logs) != 0 {
			t.Errorf("evergreen still has %d logs", len(logs))
		}
		if items, _ := store.ListBucketItems(ctx); len(items) != 1 {
			t.Errorf("bucket list has %d items, want 1", len(items))
		}
	})
}

func TestSQLiteStoreSettingsAndBucket(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	t.Run("settings round trip", func(t *testing.T) {
		if _, err := store.GetSettings(ctx); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("GetSettings error = %v, want ErrNotFound", err)
		}
		if err := store.SaveSettings(ctx, &models.AppSettings{EditorCodeHash: "e", PartnerCodeHash: "p"}); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}
		if err := store.SaveSettings(ctx, &models.AppSettings{EditorCodeHash: "e2", PartnerCodeHash: "p2"}); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}
		got, err := store.GetSettings(ctx)
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}
		if got.EditorCodeHash != "e2" || got.PartnerCodeHash != "p2" {
			t.Errorf("settings = %+v", got)
		}
	})

	t.Run("bucket list lifecycle", func(t *testing.T) {
		first := &models.BucketListItem{Text: "Skydive", CreatedBy: models.RoleEditor, CreatedAt: 100}
		second := &models.BucketListItem{Text: "Learn tango", CreatedBy: models.RolePartner, CreatedAt: 200}
		for _, item := range []*models.BucketListItem{first, second} {
			if err := store.CreateBucketItem(ctx, item); err != nil {
				t.Fatalf("CreateBucketItem failed: %v", err)
			}
		}

		items, err := store.ListBucketItems(ctx)
		if err != nil {
			t.Fatalf("ListBucketItems failed: %v", err)
		}
		if len(items) != 2 || items[0].ID != second.ID {
			t.Errorf("ListBucketItems not newest first: %+v", items)
		}

		toggled, err := store.SetBucketItemCompleted(ctx, first.ID, true)
		if err != nil {
			t.Fatalf("SetBucketItemCompleted failed: %v", err)
		}
		if !toggled.Completed || toggled.CreatedBy != models.RoleEditor {
			t.Errorf("toggled = %+v", toggled)
		}

		if err := store.DeleteBucketItem(ctx, first.ID); err != nil {
			t.Fatalf("DeleteBucketItem failed: %v", err)
		}
		if err := store.DeleteBucketItem(ctx, first.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second DeleteBucketItem error = %v, want ErrNotFound", err)
		}
		if _, err := store.SetBucketItemCompleted(ctx, "missing", true); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("SetBucketItemCompleted error = %v, want ErrNotFound", err)
		}
	})
}
