package journal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/notrecocon/cocon/internal/blob"
	"github.com/notrecocon/cocon/internal/models"
)

// UploadPhoto stores role's photo for the day and records it on the log,
// replacing any earlier photo.
func (j *Journal) UploadPhoto(ctx context.Context, role models.Role, key models.LogKey, r io.Reader, size int64, contentType, hint string) (*models.DailyLog, error) {
	if err := requireRole(role); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: got %q", ErrNotImage, contentType)
	}
	if size <= 0 || size > MaxPhotoBytes {
		return nil, ErrPhotoSize
	}
	if err := j.checkDay(ctx, key); err != nil {
		return nil, err
	}

	path := blob.PhotoPath(key, role)
	if err := j.blobs.Put(ctx, path, r, size, contentType); err != nil {
		return nil, err
	}
	slog.Info("Photo stored", "path", path, "bytes", size)

	return j.store.UpsertLog(ctx, key, models.LogPatch{
		Photos: map[models.Role]*models.Photo{
			role: {URL: blob.URLFor(path), Hint: strings.TrimSpace(hint)},
		},
	})
}

// DeletePhoto removes role's photo for the day.
func (j *Journal) DeletePhoto(ctx context.Context, role models.Role, key models.LogKey) (*models.DailyLog, error) {
	return j.UpsertLog(ctx, role, key, models.LogPatch{
		Photos: map[models.Role]*models.Photo{role: nil},
	})
}

// deletePhotos removes the stored photos referenced by logs. Failures are
// logged and otherwise ignored since the records are already gone.
func (j *Journal) deletePhotos(ctx context.Context, logs ...*models.DailyLog) {
	for _, log := range logs {
		for _, role := range models.Roles {
			photo := log.Photos.Get(role)
			if photo == nil {
				continue
			}
			if path, ok := blob.PathFromURL(photo.URL); ok {
				j.deleteBlob(ctx, path)
			}
		}
	}
}

func (j *Journal) deleteBlob(ctx context.Context, path string) {
	if err := j.blobs.Delete(ctx, path); err != nil {
		slog.Warn("Failed to delete photo", "path", path, "error", err)
	}
}
