package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/session"
	"github.com/notrecocon/cocon/internal/timeline"
)

// dayFlags selects the event and date a log command works on.
type dayFlags struct {
	event string
	date  string
}

func (d *dayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.event, "event", "e", models.EvergreenEventID, "event id or name")
	cmd.Flags().StringVarP(&d.date, "date", "d", "", "day as YYYY-MM-DD (default today)")
}

// openDay selects the event and returns the store and date to use.
func (a *app) openDay(ctx context.Context, d *dayFlags) (*session.Store, string, error) {
	s, err := a.loggedIn(ctx)
	if err != nil {
		return nil, "", err
	}
	ev, err := resolveEvent(s.State(), d.event)
	if err != nil {
		return nil, "", err
	}
	if err := s.SelectEvent(ctx, ev.ID); err != nil {
		return nil, "", err
	}
	date := d.date
	if date == "" {
		date = timeline.FormatDate(timeline.Today(a.now()))
	}
	return s, date, nil
}

func (a *app) logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Read and write a day's log",
	}
	cmd.AddCommand(
		a.logShowCmd(),
		a.logNoteCmd(),
		a.logNoteDeleteCmd(),
		a.logMoodCmd(),
		a.logSongCmd(),
		a.logPromptCmd(),
		a.logPhotoCmd(),
		a.logClearCmd(),
	)
	return cmd
}

func (a *app) logShowCmd() *cobra.Command {
	var d dayFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			log, ok := s.GetLog(date)
			if !ok {
				a.printf("Nothing written on %s yet.\n", date)
				return nil
			}
			a.printLog(log, s.State().Role)
			return nil
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) logNoteCmd() *cobra.Command {
	var d dayFlags
	cmd := &cobra.Command{
		Use:   "note TEXT",
		Short: "Add a note as the current role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			if _, err := s.AppendNote(cmd.Context(), date, args[0]); err != nil {
				return err
			}
			a.printf("Note added to %s.\n", date)
			return nil
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) logNoteDeleteCmd() *cobra.Command {
	var d dayFlags
	cmd := &cobra.Command{
		Use:   "note-delete NOTE_ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			if _, err := s.DeleteNote(cmd.Context(), date, args[0]); err != nil {
				return err
			}
			a.printf("Note deleted.\n")
			return nil
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) logMoodCmd() *cobra.Command {
	var d dayFlags
	cmd := &cobra.Command{
		Use:   "mood [MOOD]",
		Short: "Set the current role's mood; no argument clears it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			var mood *string
			if len(args) == 1 {
				mood = &args[0]
			}
			role := s.State().Role
			if _, err := s.UpsertLog(cmd.Context(), date, models.LogPatch{Moods: map[models.Role]*string{role: mood}}); err != nil {
				return err
			}
			a.printf("Mood saved for %s.\n", date)
			return nil
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) logSongCmd() *cobra.Command {
	var (
		d             dayFlags
		title, artist string
	)
	cmd := &cobra.Command{
		Use:   "song [LINK]",
		Short: "Set the current role's song of the day; no argument clears it",
		Long:  "Set the song of the day. Title and artist are looked up from the link unless given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, date, err := a.openDay(ctx, &d)
			if err != nil {
				return err
			}
			var song *models.Song
			if len(args) == 1 {
				song = &models.Song{Link: args[0], Title: title, Artist: artist}
				if title == "" {
					info, err := s.ExtractSong(ctx, args[0])
					if err != nil {
						a.printf("Could not look up the song: %v\n", err)
					} else {
						song.Title, song.Artist = info.Title, info.Artist
					}
				}
			}
			role := s.State().Role
			if _, err := s.UpsertLog(ctx, date, models.LogPatch{Songs: map[models.Role]*models.Song{role: song}}); err != nil {
				return err
			}
			if song != nil && song.Title != "" {
				a.printf("Song saved: %s by %s.\n", song.Title, song.Artist)
			} else {
				a.printf("Song saved for %s.\n", date)
			}
			return nil
		},
	}
	d.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "song title")
	cmd.Flags().StringVar(&artist, "artist", "", "song artist")
	return cmd
}

func (a *app) logPromptCmd() *cobra.Command {
	var d dayFlags
	cmd := &cobra.Command{
		Use:   "prompt TEXT",
		Short: "Leave a prompt for the other person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			var patch models.LogPatch
			if s.State().Role == models.RoleEditor {
				patch.PromptForPartner = &args[0]
			} else {
				patch.PromptForEditor = &args[0]
			}
			if _, err := s.UpsertLog(cmd.Context(), date, patch); err != nil {
				return err
			}
			a.printf("Prompt saved for %s.\n", date)
			return nil
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) logPhotoCmd() *cobra.Command {
	var (
		d      dayFlags
		hint   string
		remove bool
	)
	cmd := &cobra.Command{
		Use:   "photo [FILE]",
		Short: "Upload or remove the current role's photo for a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if remove == (len(args) == 1) {
				return errors.New("give either a FILE or --delete")
			}
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			if remove {
				if _, err := s.DeletePhoto(cmd.Context(), date); err != nil {
					return err
				}
				a.printf("Photo removed from %s.\n", date)
				return nil
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read photo: %w", err)
			}
			if _, err := s.UploadPhoto(cmd.Context(), date, data, http.DetectContentType(data), hint); err != nil {
				return err
			}
			a.printf("Photo uploaded to %s.\n", date)
			return nil
		},
	}
	d.register(cmd)
	cmd.Flags().StringVar(&hint, "hint", "", "short description of the photo")
	cmd.Flags().BoolVar(&remove, "delete", false, "remove the photo instead")
	return cmd
}

func (a *app) logClearCmd() *cobra.Command {
	var d dayFlags
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete everything written on a day (editor only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, date, err := a.openDay(cmd.Context(), &d)
			if err != nil {
				return err
			}
			if err := s.ClearLog(cmd.Context(), date); err != nil {
				return err
			}
			a.printf("Cleared %s.\n", date)
			return nil
		},
	}
	d.register(cmd)
	return cmd
}

func (a *app) printLog(log *models.DailyLog, viewer models.Role) {
	a.printf("%s\n", log.Date)
	for _, role := range models.Roles {
		a.printf("\n[%s]\n", role)
		if m := log.Moods.Get(role); m != nil {
			a.printf("  mood:  %s\n", *m)
		}
		if sg := log.Songs.Get(role); sg != nil {
			a.printf("  song:  %s\n", songLabel(sg))
		}
		if p := log.Photos.Get(role); p != nil {
			a.printf("  photo: %s %s\n", a.server+p.URL, p.Hint)
		}
		for _, n := range log.NotesFor(role) {
			a.printf("  - %s  (%s)\n", strings.ReplaceAll(n.Text, "\n", "\n    "), n.ID)
		}
	}
	// Each role sees the prompt written for them.
	if viewer == models.RolePartner && log.PromptForPartner != "" {
		a.printf("\nPrompt for you: %s\n", log.PromptForPartner)
	}
	if viewer == models.RoleEditor && log.PromptForEditor != "" {
		a.printf("\nPrompt for you: %s\n", log.PromptForEditor)
	}
}

func songLabel(s *models.Song) string {
	switch {
	case s.Title != "" && s.Artist != "":
		return fmt.Sprintf("%s by %s <%s>", s.Title, s.Artist, s.Link)
	case s.Title != "":
		return fmt.Sprintf("%s <%s>", s.Title, s.Link)
	}
	return s.Link
}
