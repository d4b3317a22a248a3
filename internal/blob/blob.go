// Package blob stores uploaded photos. Objects are addressed by a slash
// separated path and served back by the HTTP server under URLPrefix.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/notrecocon/cocon/internal/models"
)

// URLPrefix is the HTTP path under which stored objects are served.
const URLPrefix = "/photos/"

var (
	ErrNotFound    = errors.New("blob not found")
	ErrInvalidPath = errors.New("invalid blob path")
)

// Store is a flat object store.
type Store interface {
	// Put writes the object at p, replacing any existing one.
	Put(ctx context.Context, p string, r io.Reader, size int64, contentType string) error

	// Get opens the object at p and returns its content type.
	// The caller must close the reader. Returns ErrNotFound if missing.
	Get(ctx context.Context, p string) (io.ReadCloser, string, error)

	// Delete removes the object at p. Deleting a missing object is not an error.
	Delete(ctx context.Context, p string) error
}

// PhotoPath returns where a role's photo for a day is stored.
func PhotoPath(key models.LogKey, role models.Role) string {
	return fmt.Sprintf("dailyPhotos/%s/%s/%s_photo", key.EventID, key.Date, role)
}

// URLFor returns the server-relative URL of the object at p.
func URLFor(p string) string {
	return URLPrefix + p
}

// PathFromURL is the inverse of URLFor. ok is false for URLs this package did not produce.
func PathFromURL(u string) (string, bool) {
	p, ok := strings.CutPrefix(u, URLPrefix)
	if !ok || CleanPath(p) != nil {
		return "", false
	}
	return p, true
}

// CleanPath rejects paths that are empty, absolute, or escape the store root.
func CleanPath(p string) error {
	if p == "" || strings.HasPrefix(p, "/") || path.Clean(p) != p || p == ".." || strings.HasPrefix(p, "../") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return nil
}
