package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/spf13/afero"
)

const (
	contentTypeSuffix  = ".content-type"
	defaultContentType = "application/octet-stream"
)

// LocalStore keeps objects as files under a root directory.
// The content type of each object is kept in a sidecar file.
type LocalStore struct {
	fs afero.Fs
}

// NewLocal returns a store rooted at dir on the local disk.
func NewLocal(dir string) (*LocalStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return NewLocalFs(afero.NewBasePathFs(osFs, dir)), nil
}

// NewLocalFs returns a store on an arbitrary filesystem, e.g. afero.NewMemMapFs in tests.
func NewLocalFs(fsys afero.Fs) *LocalStore {
	return &LocalStore{fs: fsys}
}

// Put writes the object and its content type.
func (s *LocalStore) Put(ctx context.Context, p string, r io.Reader, size int64, contentType string) error {
	if err := CleanPath(p); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(path.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := afero.WriteReader(s.fs, p, io.LimitReader(r, size)); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if contentType == "" {
		contentType = defaultContentType
	}
	if err := afero.WriteFile(s.fs, p+contentTypeSuffix, []byte(contentType), 0644); err != nil {
		return fmt.Errorf("failed to write blob metadata: %w", err)
	}
	return nil
}

// Get opens the object for reading.
func (s *LocalStore) Get(ctx context.Context, p string) (io.ReadCloser, string, error) {
	if err := CleanPath(p); err != nil {
		return nil, "", err
	}
	f, err := s.fs.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open blob: %w", err)
	}

	contentType := defaultContentType
	if b, err := afero.ReadFile(s.fs, p+contentTypeSuffix); err == nil && len(b) > 0 {
		contentType = string(b)
	}
	return f, contentType, nil
}

// Delete removes the object and its sidecar.
func (s *LocalStore) Delete(ctx context.Context, p string) error {
	if err := CleanPath(p); err != nil {
		return err
	}
	for _, name := range []string{p, p + contentTypeSuffix} {
		if err := s.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to delete blob: %w", err)
		}
	}
	return nil
}
