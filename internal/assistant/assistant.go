// Package assistant holds the optional helpers that call outside services:
// song details from a streaming link and suggested replies to a note.
//
// Failures are never fatal to the caller. Each is reported as one of the
// sentinel errors below so the UI can say what went wrong.
package assistant

import (
	"context"
	"errors"
)

var (
	ErrFetchFailed   = errors.New("fetch failed")
	ErrBadResponse   = errors.New("bad JSON in response")
	ErrMissingFields = errors.New("response is missing fields")
	ErrEmptyInput    = errors.New("input is empty")
	ErrNotConfigured = errors.New("assistant is not configured")
)

// SongInfo is what can be learned about a song from its link.
type SongInfo struct {
	Title  string
	Artist string
}

// SongDetailer looks up a song from a streaming-service link.
type SongDetailer interface {
	SongDetails(ctx context.Context, link string) (SongInfo, error)
}

// ReplySuggester proposes short, caring replies to a note.
type ReplySuggester interface {
	SuggestReplies(ctx context.Context, note string) ([]string, error)
}

// Unavailable is a ReplySuggester used when no AI backend is configured.
type Unavailable struct{}

// SuggestReplies always returns ErrNotConfigured.
func (Unavailable) SuggestReplies(context.Context, string) ([]string, error) {
	return nil, ErrNotConfigured
}
