package models

import (
	"fmt"
	"strings"
)

// LogKey identifies a daily log: one per event per calendar date.
type LogKey struct {
	EventID string
	Date    string
}

// String renders the legacy composite identifier "eventId_date".
// It is an opaque label and is never parsed back into a key.
func (k LogKey) String() string {
	return k.EventID + "_" + k.Date
}

// Note is a single free-text entry written by one role on a given day.
type Note struct {
	// ID is the unique identifier for the note (UUID format).
	ID string

	// Author is the role that wrote the note.
	Author Role

	// Text is the note body.
	Text string

	// CreatedAt is the Unix timestamp when the note was written.
	CreatedAt int64
}

// Song is a song-of-the-day pick.
type Song struct {
	// Link is the streaming-service URL.
	Link string

	// Title and Artist are optional and usually filled from the link's metadata.
	Title  string
	Artist string
}

// Photo is a role's photo for the day.
type Photo struct {
	// URL is where the photo can be fetched from.
	URL string

	// Hint is an optional caption.
	Hint string
}

// DailyLog is everything both roles wrote about one date within one event.
type DailyLog struct {
	EventID string
	Date    string

	// EditorNotes and PartnerNotes are ordered oldest first.
	EditorNotes  []Note
	PartnerNotes []Note

	// PromptForPartner is written by the editor; PromptForEditor by the partner.
	PromptForPartner string
	PromptForEditor  string

	Moods  RoleSlots[string]
	Songs  RoleSlots[Song]
	Photos RoleSlots[Photo]

	// UpdatedAt is the Unix timestamp of the last write.
	UpdatedAt int64
}

// NewDailyLog returns an empty, normalized log for key.
func NewDailyLog(key LogKey) *DailyLog {
	return &DailyLog{
		EventID:      key.EventID,
		Date:         key.Date,
		EditorNotes:  []Note{},
		PartnerNotes: []Note{},
	}
}

// Key returns the log's compound key.
func (l *DailyLog) Key() LogKey {
	return LogKey{EventID: l.EventID, Date: l.Date}
}

// Normalize replaces absent lists with empty ones so a written log never has nil lists.
func (l *DailyLog) Normalize() {
	if l.EditorNotes == nil {
		l.EditorNotes = []Note{}
	}
	if l.PartnerNotes == nil {
		l.PartnerNotes = []Note{}
	}
}

// NotesFor returns the note list owned by role.
func (l *DailyLog) NotesFor(role Role) []Note {
	if role == RoleEditor {
		return l.EditorNotes
	}
	return l.PartnerNotes
}

func (l *DailyLog) setNotes(role Role, notes []Note) {
	if role == RoleEditor {
		l.EditorNotes = notes
		return
	}
	l.PartnerNotes = notes
}

// FindNote returns the note with id, searching both lists.
func (l *DailyLog) FindNote(id string) (Note, bool) {
	for _, role := range Roles {
		for _, n := range l.NotesFor(role) {
			if n.ID == id {
				return n, true
			}
		}
	}
	return Note{}, false
}

// IsBlank reports whether the log holds no content at all.
func (l *DailyLog) IsBlank() bool {
	return len(l.EditorNotes) == 0 && len(l.PartnerNotes) == 0 &&
		l.PromptForPartner == "" && l.PromptForEditor == "" &&
		l.Moods.IsEmpty() && l.Songs.IsEmpty() && l.Photos.IsEmpty()
}

// LogPatch is a partial update of a daily log.
//
// Nil pointer fields are left untouched. For the per-role maps, a present key
// updates that role's slot and a nil value clears it. A notes list replaces the
// role's whole list.
type LogPatch struct {
	EditorNotes  *[]string
	PartnerNotes *[]string

	PromptForPartner *string
	PromptForEditor  *string

	Moods  map[Role]*string
	Songs  map[Role]*Song
	Photos map[Role]*Photo
}

// IsEmpty reports whether the patch changes nothing.
func (p LogPatch) IsEmpty() bool {
	return p.EditorNotes == nil && p.PartnerNotes == nil &&
		p.PromptForPartner == nil && p.PromptForEditor == nil &&
		len(p.Moods) == 0 && len(p.Songs) == 0 && len(p.Photos) == 0
}

// CheckAuthor returns ErrOtherRoleSlot if the patch touches any field owned by
// the role other than author.
func (p LogPatch) CheckAuthor(author Role) error {
	other := author.Other()
	switch {
	case other == RoleEditor && (p.EditorNotes != nil || p.PromptForPartner != nil):
		return fmt.Errorf("%w: %s fields", ErrOtherRoleSlot, other)
	case other == RolePartner && (p.PartnerNotes != nil || p.PromptForEditor != nil):
		return fmt.Errorf("%w: %s fields", ErrOtherRoleSlot, other)
	}
	for _, keys := range [][]Role{roleKeys(p.Moods), roleKeys(p.Songs), roleKeys(p.Photos)} {
		for _, r := range keys {
			if r != author {
				return fmt.Errorf("%w: %s slot", ErrOtherRoleSlot, r)
			}
		}
	}
	return nil
}

func roleKeys[T any](m map[Role]T) []Role {
	keys := make([]Role, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	return keys
}

// Apply merges the patch into the log and normalizes the result.
//
// A replaced notes list keeps the IDs and timestamps of leading notes whose
// text is unchanged, so re-sending a list with one more entry only adds a note.
func (l *DailyLog) Apply(p LogPatch, now int64, newID func() string) {
	if p.EditorNotes != nil {
		l.setNotes(RoleEditor, replaceNotes(l.EditorNotes, *p.EditorNotes, RoleEditor, now, newID))
	}
	if p.PartnerNotes != nil {
		l.setNotes(RolePartner, replaceNotes(l.PartnerNotes, *p.PartnerNotes, RolePartner, now, newID))
	}
	if p.PromptForPartner != nil {
		l.PromptForPartner = strings.TrimSpace(*p.PromptForPartner)
	}
	if p.PromptForEditor != nil {
		l.PromptForEditor = strings.TrimSpace(*p.PromptForEditor)
	}
	for r, mood := range p.Moods {
		if mood != nil && strings.TrimSpace(*mood) == "" {
			mood = nil
		}
		l.Moods.Set(r, mood)
	}
	for r, song := range p.Songs {
		if song != nil && strings.TrimSpace(song.Link) == "" {
			song = nil
		}
		l.Songs.Set(r, song)
	}
	for r, photo := range p.Photos {
		if photo != nil && photo.URL == "" {
			photo = nil
		}
		l.Photos.Set(r, photo)
	}
	l.UpdatedAt = now
	l.Normalize()
}

func replaceNotes(current []Note, texts []string, author Role, now int64, newID func() string) []Note {
	notes := make([]Note, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		// Blank entries are dropped, so align on the position in the result.
		if i := len(notes); i < len(current) && current[i].Text == text {
			notes = append(notes, current[i])
			continue
		}
		notes = append(notes, Note{ID: newID(), Author: author, Text: text, CreatedAt: now})
	}
	return notes
}
