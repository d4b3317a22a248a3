// Package wire converts between domain models and API messages, and between
// domain errors and Connect errors.
package wire

import (
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/pkg/api"
)

// Event converts a domain event to its API form.
func Event(ev *models.Event) api.Event {
	return api.Event{
		ID:          ev.ID,
		Name:        ev.Name,
		StartDate:   ev.StartDate,
		EndDate:     ev.EndDate,
		IsEvergreen: ev.IsEvergreen,
		CreatedBy:   string(ev.CreatedBy),
		CreatedAt:   ev.CreatedAt,
	}
}

// Events converts a list of domain events.
func Events(events []*models.Event) []api.Event {
	out := make([]api.Event, len(events))
	for i, ev := range events {
		out[i] = Event(ev)
	}
	return out
}

// ToEvent converts an API event to the domain model.
func ToEvent(ev api.Event) *models.Event {
	return &models.Event{
		ID:          ev.ID,
		Name:        ev.Name,
		StartDate:   ev.StartDate,
		EndDate:     ev.EndDate,
		IsEvergreen: ev.IsEvergreen,
		CreatedBy:   models.Role(ev.CreatedBy),
		CreatedAt:   ev.CreatedAt,
	}
}

func notes(in []models.Note) []api.Note {
	out := make([]api.Note, len(in))
	for i, n := range in {
		out[i] = api.Note{ID: n.ID, Text: n.Text, CreatedAt: n.CreatedAt}
	}
	return out
}

func toNotes(in []api.Note, author models.Role) []models.Note {
	out := make([]models.Note, len(in))
	for i, n := range in {
		out[i] = models.Note{ID: n.ID, Author: author, Text: n.Text, CreatedAt: n.CreatedAt}
	}
	return out
}

func roleMap[T, U any](s models.RoleSlots[T], conv func(T) U) api.RoleMap[U] {
	var m api.RoleMap[U]
	if s.Editor != nil {
		v := conv(*s.Editor)
		m.Editor = &v
	}
	if s.Partner != nil {
		v := conv(*s.Partner)
		m.Partner = &v
	}
	return m
}

func roleSlots[T, U any](m api.RoleMap[T], conv func(T) U) models.RoleSlots[U] {
	var s models.RoleSlots[U]
	if m.Editor != nil {
		v := conv(*m.Editor)
		s.Editor = &v
	}
	if m.Partner != nil {
		v := conv(*m.Partner)
		s.Partner = &v
	}
	return s
}

func same[T any](v T) T { return v }

func song(s models.Song) api.Song {
	return api.Song{Link: s.Link, Title: s.Title, Artist: s.Artist}
}

func toSong(s api.Song) models.Song {
	return models.Song{Link: s.Link, Title: s.Title, Artist: s.Artist}
}

func photo(p models.Photo) api.Photo {
	return api.Photo{URL: p.URL, Hint: p.Hint}
}

func toPhoto(p api.Photo) models.Photo {
	return models.Photo{URL: p.URL, Hint: p.Hint}
}

// Log converts a domain log to its API form. Lists are never null.
func Log(l *models.DailyLog) api.DailyLog {
	return api.DailyLog{
		ID:               l.Key().String(),
		EventID:          l.EventID,
		Date:             l.Date,
		EditorNotes:      notes(l.EditorNotes),
		PartnerNotes:     notes(l.PartnerNotes),
		PromptForPartner: l.PromptForPartner,
		PromptForEditor:  l.PromptForEditor,
		Moods:            roleMap(l.Moods, same[string]),
		Songs:            roleMap(l.Songs, song),
		Photos:           roleMap(l.Photos, photo),
		UpdatedAt:        l.UpdatedAt,
	}
}

// Logs converts a list of domain logs.
func Logs(logs []*models.DailyLog) []api.DailyLog {
	out := make([]api.DailyLog, len(logs))
	for i, l := range logs {
		out[i] = Log(l)
	}
	return out
}

// ToLog converts an API log to the domain model. The ID label is not parsed;
// the key comes from EventID and Date.
func ToLog(l api.DailyLog) *models.DailyLog {
	log := &models.DailyLog{
		EventID:          l.EventID,
		Date:             l.Date,
		EditorNotes:      toNotes(l.EditorNotes, models.RoleEditor),
		PartnerNotes:     toNotes(l.PartnerNotes, models.RolePartner),
		PromptForPartner: l.PromptForPartner,
		PromptForEditor:  l.PromptForEditor,
		Moods:            roleSlots(l.Moods, same[string]),
		Songs:            roleSlots(l.Songs, toSong),
		Photos:           roleSlots(l.Photos, toPhoto),
		UpdatedAt:        l.UpdatedAt,
	}
	log.Normalize()
	return log
}

// LogPatch converts a domain patch to its API form.
func LogPatch(p models.LogPatch) api.LogPatch {
	out := api.LogPatch{
		EditorNotes:      p.EditorNotes,
		PartnerNotes:     p.PartnerNotes,
		PromptForPartner: p.PromptForPartner,
		PromptForEditor:  p.PromptForEditor,
	}
	if p.Moods != nil {
		out.Moods = make(map[string]*string, len(p.Moods))
		for r, v := range p.Moods {
			out.Moods[string(r)] = v
		}
	}
	if p.Songs != nil {
		out.Songs = make(map[string]*api.Song, len(p.Songs))
		for r, v := range p.Songs {
			out.Songs[string(r)] = convPtr(v, song)
		}
	}
	if p.Photos != nil {
		out.Photos = make(map[string]*api.Photo, len(p.Photos))
		for r, v := range p.Photos {
			out.Photos[string(r)] = convPtr(v, photo)
		}
	}
	return out
}

// ToLogPatch converts an API patch to the domain model, rejecting unknown role keys.
func ToLogPatch(p api.LogPatch) (models.LogPatch, error) {
	out := models.LogPatch{
		EditorNotes:      p.EditorNotes,
		PartnerNotes:     p.PartnerNotes,
		PromptForPartner: p.PromptForPartner,
		PromptForEditor:  p.PromptForEditor,
	}
	var err error
	if out.Moods, err = roleKeyed(p.Moods, same[string]); err != nil {
		return models.LogPatch{}, err
	}
	if out.Songs, err = roleKeyed(p.Songs, toSong); err != nil {
		return models.LogPatch{}, err
	}
	if out.Photos, err = roleKeyed(p.Photos, toPhoto); err != nil {
		return models.LogPatch{}, err
	}
	return out, nil
}

func roleKeyed[T, U any](in map[string]*T, conv func(T) U) (map[models.Role]*U, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[models.Role]*U, len(in))
	for k, v := range in {
		role, err := models.ParseRole(k)
		if err != nil {
			return nil, err
		}
		out[role] = convPtr(v, conv)
	}
	return out, nil
}

func convPtr[T, U any](v *T, conv func(T) U) *U {
	if v == nil {
		return nil
	}
	u := conv(*v)
	return &u
}

// BucketItem converts a domain bucket list item to its API form.
func BucketItem(item *models.BucketListItem) api.BucketListItem {
	return api.BucketListItem{
		ID:        item.ID,
		Text:      item.Text,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
		CreatedBy: string(item.CreatedBy),
	}
}

// BucketItems converts a list of bucket list items.
func BucketItems(items []*models.BucketListItem) []api.BucketListItem {
	out := make([]api.BucketListItem, len(items))
	for i, item := range items {
		out[i] = BucketItem(item)
	}
	return out
}

// ToBucketItem converts an API bucket list item to the domain model.
func ToBucketItem(item api.BucketListItem) *models.BucketListItem {
	return &models.BucketListItem{
		ID:        item.ID,
		Text:      item.Text,
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
		CreatedBy: models.Role(item.CreatedBy),
	}
}
