package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/notrecocon/cocon/internal/blob"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
	"github.com/notrecocon/cocon/internal/timeline"
)

// ListLogs returns every log written for an event, ordered by date.
func (j *Journal) ListLogs(ctx context.Context, eventID string) ([]*models.DailyLog, error) {
	if _, err := j.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return j.store.ListLogsByEvent(ctx, eventID)
}

// checkDay verifies that key names an existing event and a date inside it.
func (j *Journal) checkDay(ctx context.Context, key models.LogKey) error {
	date, err := timeline.ParseDate(key.Date)
	if err != nil {
		return err
	}
	ev, err := j.store.GetEvent(ctx, key.EventID)
	if err != nil {
		return err
	}
	if !timeline.Contains(ev, date) {
		return fmt.Errorf("%w: %s is not within %s to %s", ErrOutOfRange, key.Date, ev.StartDate, ev.EndDate)
	}
	return nil
}

// UpsertLog merges a partial update into a day's log on behalf of role.
//
// A role may only touch its own notes, prompt, mood, song and photo. Photos
// are set through UploadPhoto; here a photo slot may only be cleared or have
// its hint changed.
func (j *Journal) UpsertLog(ctx context.Context, role models.Role, key models.LogKey, patch models.LogPatch) (*models.DailyLog, error) {
	if err := requireRole(role); err != nil {
		return nil, err
	}
	if err := patch.CheckAuthor(role); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrPermissionDenied, err)
	}
	if err := j.checkDay(ctx, key); err != nil {
		return nil, err
	}
	ownPhoto := blob.URLFor(blob.PhotoPath(key, role))
	for _, photo := range patch.Photos {
		if photo != nil && photo.URL != ownPhoto {
			return nil, fmt.Errorf("%w: photos must be uploaded", models.ErrPermissionDenied)
		}
	}

	log, err := j.store.UpsertLog(ctx, key, patch)
	if err != nil {
		return nil, err
	}
	if photo, ok := patch.Photos[role]; ok && photo == nil {
		j.deleteBlob(ctx, blob.PhotoPath(key, role))
	}
	return log, nil
}

// AppendNote adds a note to role's list for the day.
func (j *Journal) AppendNote(ctx context.Context, role models.Role, key models.LogKey, text string) (*models.DailyLog, error) {
	if err := requireRole(role); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := j.checkDay(ctx, key); err != nil {
		return nil, err
	}
	return j.store.AppendNote(ctx, key, &models.Note{
		Author:    role,
		Text:      text,
		CreatedAt: j.now().Unix(),
	})
}

// DeleteNote removes one note. The editor may delete any note; the partner
// only their own.
func (j *Journal) DeleteNote(ctx context.Context, role models.Role, key models.LogKey, noteID string) (*models.DailyLog, error) {
	if err := requireRole(role); err != nil {
		return nil, err
	}
	log, err := j.store.GetLog(ctx, key)
	if err != nil {
		return nil, err
	}
	note, ok := log.FindNote(noteID)
	if !ok {
		return nil, fmt.Errorf("note %s: %w", noteID, storage.ErrNotFound)
	}
	if role != models.RoleEditor && note.Author != role {
		return nil, fmt.Errorf("%w: only the editor can delete the other person's notes", models.ErrPermissionDenied)
	}
	return j.store.DeleteNote(ctx, key, noteID)
}

// ClearLog deletes a whole day, including both photos. Editor only.
func (j *Journal) ClearLog(ctx context.Context, role models.Role, key models.LogKey) error {
	if err := models.RequireEditor(role); err != nil {
		return err
	}
	log, err := j.store.GetLog(ctx, key)
	if err != nil {
		return err
	}
	if err := j.store.ClearLog(ctx, key); err != nil {
		return err
	}
	j.deletePhotos(ctx, log)
	return nil
}
