// Package export renders a snapshot of the journal as YAML, Markdown or HTML.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/timeline"
)

// Format is an output format.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts the names above plus "md" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Source is where a snapshot is read from.
type Source interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
	ListLogs(ctx context.Context, eventID string) ([]*models.DailyLog, error)
	ListBucketItems(ctx context.Context) ([]*models.BucketListItem, error)
}

// Snapshot is everything that gets exported.
type Snapshot struct {
	ExportedAt time.Time        `yaml:"exported_at"`
	Events     []EventSnapshot  `yaml:"events"`
	BucketList []BucketSnapshot `yaml:"bucket_list,omitempty"`
}

type EventSnapshot struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	StartDate string        `yaml:"start_date,omitempty"`
	EndDate   string        `yaml:"end_date,omitempty"`
	Evergreen bool          `yaml:"evergreen,omitempty"`
	Days      []DaySnapshot `yaml:"days,omitempty"`
}

type DaySnapshot struct {
	Date             string       `yaml:"date"`
	EditorNotes      []string     `yaml:"editor_notes,omitempty"`
	PartnerNotes     []string     `yaml:"partner_notes,omitempty"`
	PromptForPartner string       `yaml:"prompt_for_partner,omitempty"`
	PromptForEditor  string       `yaml:"prompt_for_editor,omitempty"`
	EditorMood       string       `yaml:"editor_mood,omitempty"`
	PartnerMood      string       `yaml:"partner_mood,omitempty"`
	EditorSong       *models.Song `yaml:"editor_song,omitempty"`
	PartnerSong      *models.Song `yaml:"partner_song,omitempty"`
	EditorPhoto      string       `yaml:"editor_photo,omitempty"`
	PartnerPhoto     string       `yaml:"partner_photo,omitempty"`
}

type BucketSnapshot struct {
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
	AddedBy   string `yaml:"added_by"`
}

// Collect reads a snapshot from src. Days are in date order.
func Collect(ctx context.Context, src Source, now time.Time) (*Snapshot, error) {
	events, err := src.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	timeline.SortEvents(events)

	snap := &Snapshot{ExportedAt: now.UTC()}
	for _, ev := range events {
		logs, err := src.ListLogs(ctx, ev.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list logs for %s: %w", ev.ID, err)
		}
		es := EventSnapshot{
			ID:        ev.ID,
			Name:      ev.Name,
			StartDate: ev.StartDate,
			EndDate:   ev.EndDate,
			Evergreen: ev.IsEvergreen,
		}
		for _, l := range logs {
			if !l.IsBlank() {
				es.Days = append(es.Days, day(l))
			}
		}
		slices.SortFunc(es.Days, func(a, b DaySnapshot) int { return strings.Compare(a.Date, b.Date) })
		snap.Events = append(snap.Events, es)
	}

	items, err := src.ListBucketItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket items: %w", err)
	}
	for _, it := range items {
		snap.BucketList = append(snap.BucketList, BucketSnapshot{Text: it.Text, Completed: it.Completed, AddedBy: it.CreatedBy.String()})
	}
	return snap, nil
}

func day(l *models.DailyLog) DaySnapshot {
	d := DaySnapshot{
		Date:             l.Date,
		EditorNotes:      noteTexts(l.EditorNotes),
		PartnerNotes:     noteTexts(l.PartnerNotes),
		PromptForPartner: l.PromptForPartner,
		PromptForEditor:  l.PromptForEditor,
		EditorSong:       l.Songs.Get(models.RoleEditor),
		PartnerSong:      l.Songs.Get(models.RolePartner),
	}
	if m := l.Moods.Get(models.RoleEditor); m != nil {
		d.EditorMood = *m
	}
	if m := l.Moods.Get(models.RolePartner); m != nil {
		d.PartnerMood = *m
	}
	if p := l.Photos.Get(models.RoleEditor); p != nil {
		d.EditorPhoto = p.URL
	}
	if p := l.Photos.Get(models.RolePartner); p != nil {
		d.PartnerPhoto = p.URL
	}
	return d
}

func noteTexts(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Text)
	}
	return out
}

// Write renders snap to w in the given format.
func Write(w io.Writer, snap *Snapshot, format Format) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, snap)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(snap))
		return err
	case FormatHTML:
		return WriteHTML(w, snap)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// WriteYAML writes snap as a YAML document.
func WriteYAML(w io.Writer, snap *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// Markdown renders snap as a Markdown document.
func Markdown(snap *Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Notre Cocon\n\n_Exported %s_\n", snap.ExportedAt.Format(time.RFC1123))

	for _, ev := range snap.Events {
		fmt.Fprintf(&b, "\n## %s\n\n", ev.Name)
		if !ev.Evergreen {
			fmt.Fprintf(&b, "%s to %s\n\n", ev.StartDate, ev.EndDate)
		}
		if len(ev.Days) == 0 {
			b.WriteString("Nothing written yet.\n")
		}
		for _, d := range ev.Days {
			fmt.Fprintf(&b, "### %s\n\n", d.Date)
			writeRole(&b, "Editor", d.EditorMood, d.EditorSong, d.EditorNotes, d.PromptForPartner, "for partner")
			writeRole(&b, "Partner", d.PartnerMood, d.PartnerSong, d.PartnerNotes, d.PromptForEditor, "for editor")
		}
	}

	if len(snap.BucketList) > 0 {
		b.WriteString("\n## Bucket list\n\n")
		for _, it := range snap.BucketList {
			mark := " "
			if it.Completed {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, it.Text)
		}
	}
	return b.String()
}

func writeRole(b *strings.Builder, who, mood string, song *models.Song, notes []string, prompt, promptLabel string) {
	if mood == "" && song == nil && len(notes) == 0 && prompt == "" {
		return
	}
	fmt.Fprintf(b, "**%s**", who)
	if mood != "" {
		fmt.Fprintf(b, " (%s)", mood)
	}
	b.WriteString("\n\n")
	for _, n := range notes {
		fmt.Fprintf(b, "> %s\n>\n", strings.ReplaceAll(n, "\n", "\n> "))
	}
	if len(notes) > 0 {
		b.WriteString("\n")
	}
	if song != nil {
		title := song.Title
		if title == "" {
			title = song.Link
		}
		if song.Artist != "" {
			title += " by " + song.Artist
		}
		fmt.Fprintf(b, "Song: [%s](%s)\n\n", title, song.Link)
	}
	if prompt != "" {
		fmt.Fprintf(b, "Prompt %s: _%s_\n\n", promptLabel, prompt)
	}
}

// renderer escapes raw HTML found in notes.
var renderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// WriteHTML renders snap as a standalone HTML page.
func WriteHTML(w io.Writer, snap *Snapshot) error {
	var body bytes.Buffer
	if err := renderer.Convert([]byte(Markdown(snap)), &body); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Notre Cocon</title>
</head>
<body>
%s</body>
</html>
`, body.String())
	return err
}
