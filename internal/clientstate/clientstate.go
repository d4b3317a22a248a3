// Package clientstate keeps the command-line client's session on disk:
// the server it talks to, the role it logged in as and the bearer token.
package clientstate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/session"
)

const lockTimeout = 3 * time.Second

// Session is the on-disk form of a client session.
type Session struct {
	Server  string    `yaml:"server,omitempty"`
	Role    string    `yaml:"role,omitempty"`
	Token   string    `yaml:"token,omitempty"`
	SavedAt time.Time `yaml:"saved_at,omitempty"`
}

// File is a session file guarded by a lock file next to it.
// It implements session.RoleStorage.
type File struct {
	path     string
	fileLock *flock.Flock
	mu       sync.Mutex
}

var _ session.RoleStorage = (*File)(nil)

// DefaultPath returns ~/.config/cocon/session.yaml (or the OS equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "cocon", "session.yaml"), nil
}

// Open returns the session file at path. The file need not exist.
func Open(path string) *File {
	return &File{path: path, fileLock: flock.New(path + ".lock")}
}

// Path returns the location of the session file.
func (f *File) Path() string {
	return f.path
}

// Read returns the stored session, or a zero Session if there is none.
func (f *File) Read() (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var s Session
	err := f.withLock(func() error {
		var err error
		s, err = f.readLocked()
		return err
	})
	return s, err
}

// Update applies fn to the stored session and writes the result.
func (f *File) Update(fn func(*Session)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.withLock(func() error {
		s, err := f.readLocked()
		if err != nil {
			return err
		}
		fn(&s)
		s.SavedAt = time.Now().UTC()
		return f.writeLocked(s)
	})
}

// Load implements session.RoleStorage.
func (f *File) Load() (session.Credentials, error) {
	s, err := f.Read()
	if err != nil {
		return session.Credentials{}, err
	}
	role, err := models.ParseRole(s.Role)
	if err != nil {
		// An unreadable role is treated as logged out.
		return session.Credentials{}, nil
	}
	return session.Credentials{Role: role, Token: s.Token}, nil
}

// Save implements session.RoleStorage.
func (f *File) Save(c session.Credentials) error {
	return f.Update(func(s *Session) {
		s.Role = c.Role.String()
		s.Token = c.Token
	})
}

// Clear implements session.RoleStorage. The server address is kept.
func (f *File) Clear() error {
	return f.Update(func(s *Session) {
		s.Role = ""
		s.Token = ""
	})
}

func (f *File) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := f.fileLock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("could not acquire session lock")
	}
	defer func() { _ = f.fileLock.Unlock() }()

	return fn()
}

func (f *File) readLocked() (Session, error) {
	var s Session
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read session: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse session %s: %w", f.path, err)
	}
	return s, nil
}

// writeLocked replaces the file atomically through a temp file and rename.
func (f *File) writeLocked(s Session) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set session permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace session: %w", err)
	}
	return nil
}
