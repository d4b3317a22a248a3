package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
)

const logColumns = `event_id, log_date, prompt_for_partner, prompt_for_editor,
	editor_mood, partner_mood,
	editor_song_link, editor_song_title, editor_song_artist,
	partner_song_link, partner_song_title, partner_song_artist,
	editor_photo_url, editor_photo_hint, partner_photo_url, partner_photo_hint,
	updated_at`

// logRow mirrors one daily_logs row.
type logRow struct {
	eventID, date                       string
	promptForPartner, promptForEditor   string
	editorMood, partnerMood             sql.NullString
	editorSongLink, partnerSongLink     sql.NullString
	editorSongTitle, editorSongArtist   string
	partnerSongTitle, partnerSongArtist string
	editorPhotoURL, partnerPhotoURL     sql.NullString
	editorPhotoHint, partnerPhotoHint   string
	updatedAt                           int64
}

func scanLog(row rowScanner) (*models.DailyLog, error) {
	var r logRow
	err := row.Scan(&r.eventID, &r.date, &r.promptForPartner, &r.promptForEditor,
		&r.editorMood, &r.partnerMood,
		&r.editorSongLink, &r.editorSongTitle, &r.editorSongArtist,
		&r.partnerSongLink, &r.partnerSongTitle, &r.partnerSongArtist,
		&r.editorPhotoURL, &r.editorPhotoHint, &r.partnerPhotoURL, &r.partnerPhotoHint,
		&r.updatedAt)
	if err != nil {
		return nil, err
	}

	log := models.NewDailyLog(models.LogKey{EventID: r.eventID, Date: r.date})
	log.PromptForPartner = r.promptForPartner
	log.PromptForEditor = r.promptForEditor
	log.Moods.Editor = stringPtr(r.editorMood)
	log.Moods.Partner = stringPtr(r.partnerMood)
	if r.editorSongLink.Valid {
		log.Songs.Editor = &models.Song{Link: r.editorSongLink.String, Title: r.editorSongTitle, Artist: r.editorSongArtist}
	}
	if r.partnerSongLink.Valid {
		log.Songs.Partner = &models.Song{Link: r.partnerSongLink.String, Title: r.partnerSongTitle, Artist: r.partnerSongArtist}
	}
	if r.editorPhotoURL.Valid {
		log.Photos.Editor = &models.Photo{URL: r.editorPhotoURL.String, Hint: r.editorPhotoHint}
	}
	if r.partnerPhotoURL.Valid {
		log.Photos.Partner = &models.Photo{URL: r.partnerPhotoURL.String, Hint: r.partnerPhotoHint}
	}
	log.UpdatedAt = r.updatedAt
	return log, nil
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func moodValue(m *string) sql.NullString {
	if m == nil {
		return sql.NullString{}
	}
	return nullString(*m)
}

func songValues(song *models.Song) (sql.NullString, string, string) {
	if song == nil {
		return sql.NullString{}, "", ""
	}
	return nullString(song.Link), song.Title, song.Artist
}

func photoValues(photo *models.Photo) (sql.NullString, string) {
	if photo == nil {
		return sql.NullString{}, ""
	}
	return nullString(photo.URL), photo.Hint
}

// ListLogsByEvent returns every log of an event ordered by date, with notes.
func (s *Store) ListLogsByEvent(ctx context.Context, eventID string) ([]*models.DailyLog, error) {
	rows, err := s.db.QueryContext(ctx,
		s.q("SELECT "+logColumns+" FROM daily_logs WHERE event_id = ? ORDER BY log_date"), eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.DailyLog
	byDate := make(map[string]*models.DailyLog)
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, log)
		byDate[log.Date] = log
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate logs: %w", err)
	}
	rows.Close()

	noteRows, err := s.db.QueryContext(ctx,
		s.q("SELECT id, log_date, author, body, created_at FROM log_notes WHERE event_id = ? ORDER BY log_date, seq"), eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer noteRows.Close()

	for noteRows.Next() {
		var (
			n      models.Note
			date   string
			author string
		)
		if err := noteRows.Scan(&n.ID, &date, &author, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Author = models.Role(author)
		if log, ok := byDate[date]; ok {
			appendLoaded(log, n)
		}
	}
	if err := noteRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return logs, nil
}

func appendLoaded(log *models.DailyLog, n models.Note) {
	if n.Author == models.RoleEditor {
		log.EditorNotes = append(log.EditorNotes, n)
		return
	}
	log.PartnerNotes = append(log.PartnerNotes, n)
}

// GetLog retrieves a single log with its notes.
func (s *Store) GetLog(ctx context.Context, key models.LogKey) (*models.DailyLog, error) {
	return s.getLog(ctx, s.db, key)
}

func (s *Store) getLog(ctx context.Context, db DBTX, key models.LogKey) (*models.DailyLog, error) {
	log, err := scanLog(db.QueryRowContext(ctx,
		s.q("SELECT "+logColumns+" FROM daily_logs WHERE event_id = ? AND log_date = ?"),
		key.EventID, key.Date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("log", key.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		s.q("SELECT id, author, body, created_at FROM log_notes WHERE event_id = ? AND log_date = ? ORDER BY seq"),
		key.EventID, key.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			n      models.Note
			author string
		)
		if err := rows.Scan(&n.ID, &author, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Author = models.Role(author)
		appendLoaded(log, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return log, nil
}

// loadOrNew returns the stored log at key, or a fresh empty one.
func (s *Store) loadOrNew(ctx context.Context, db DBTX, key models.LogKey) (*models.DailyLog, error) {
	log, err := s.getLog(ctx, db, key)
	if err == nil {
		return log, nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return models.NewDailyLog(key), nil
	}
	return nil, err
}

// writeLog upserts the daily_logs row for log. Notes are written separately.
func (s *Store) writeLog(ctx context.Context, db DBTX, log *models.DailyLog) error {
	editorSong, editorTitle, editorArtist := songValues(log.Songs.Editor)
	partnerSong, partnerTitle, partnerArtist := songValues(log.Songs.Partner)
	editorPhoto, editorHint := photoValues(log.Photos.Editor)
	partnerPhoto, partnerHint := photoValues(log.Photos.Partner)

	_, err := db.ExecContext(ctx,
		s.q(`INSERT INTO daily_logs (`+logColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (event_id, log_date) DO UPDATE SET
				prompt_for_partner = excluded.prompt_for_partner,
				prompt_for_editor = excluded.prompt_for_editor,
				editor_mood = excluded.editor_mood,
				partner_mood = excluded.partner_mood,
				editor_song_link = excluded.editor_song_link,
				editor_song_title = excluded.editor_song_title,
				editor_song_artist = excluded.editor_song_artist,
				partner_song_link = excluded.partner_song_link,
				partner_song_title = excluded.partner_song_title,
				partner_song_artist = excluded.partner_song_artist,
				editor_photo_url = excluded.editor_photo_url,
				editor_photo_hint = excluded.editor_photo_hint,
				partner_photo_url = excluded.partner_photo_url,
				partner_photo_hint = excluded.partner_photo_hint,
				updated_at = excluded.updated_at`),
		log.EventID, log.Date, log.PromptForPartner, log.PromptForEditor,
		moodValue(log.Moods.Editor), moodValue(log.Moods.Partner),
		editorSong, editorTitle, editorArtist,
		partnerSong, partnerTitle, partnerArtist,
		editorPhoto, editorHint, partnerPhoto, partnerHint,
		log.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write log: %w", err)
	}
	return nil
}

// replaceNotes rewrites one role's note list for a log.
func (s *Store) replaceNotes(ctx context.Context, db DBTX, key models.LogKey, author models.Role, notes []models.Note) error {
	if _, err := db.ExecContext(ctx,
		s.q("DELETE FROM log_notes WHERE event_id = ? AND log_date = ? AND author = ?"),
		key.EventID, key.Date, string(author)); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	for i, n := range notes {
		if err := s.insertNote(ctx, db, key, n, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertNote(ctx context.Context, db DBTX, key models.LogKey, n models.Note, seq int) error {
	_, err := db.ExecContext(ctx,
		s.q("INSERT INTO log_notes (id, event_id, log_date, author, seq, body, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"),
		n.ID, key.EventID, key.Date, string(n.Author), seq, n.Text, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// UpsertLog merges patch into the log at key and returns the stored result.
func (s *Store) UpsertLog(ctx context.Context, key models.LogKey, patch models.LogPatch) (*models.DailyLog, error) {
	var out *models.DailyLog
	err := s.withTx(ctx, func(tx DBTX) error {
		log, err := s.loadOrNew(ctx, tx, key)
		if err != nil {
			return err
		}
		log.Apply(patch, s.now().Unix(), s.newID)

		if err := s.writeLog(ctx, tx, log); err != nil {
			return err
		}
		if patch.EditorNotes != nil {
			if err := s.replaceNotes(ctx, tx, key, models.RoleEditor, log.EditorNotes); err != nil {
				return err
			}
		}
		if patch.PartnerNotes != nil {
			if err := s.replaceNotes(ctx, tx, key, models.RolePartner, log.PartnerNotes); err != nil {
				return err
			}
		}
		out = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendNote adds a note at the end of its author's list.
func (s *Store) AppendNote(ctx context.Context, key models.LogKey, note *models.Note) (*models.DailyLog, error) {
	if note.ID == "" {
		note.ID = s.newID()
	}
	now := s.now().Unix()
	if note.CreatedAt == 0 {
		note.CreatedAt = now
	}

	var out *models.DailyLog
	err := s.withTx(ctx, func(tx DBTX) error {
		log, err := s.loadOrNew(ctx, tx, key)
		if err != nil {
			return err
		}
		log.UpdatedAt = now
		if err := s.writeLog(ctx, tx, log); err != nil {
			return err
		}

		var seq int
		if err := tx.QueryRowContext(ctx,
			s.q("SELECT COALESCE(MAX(seq), 0) FROM log_notes WHERE event_id = ? AND log_date = ? AND author = ?"),
			key.EventID, key.Date, string(note.Author)).Scan(&seq); err != nil {
			return fmt.Errorf("failed to get note position: %w", err)
		}
		if err := s.insertNote(ctx, tx, key, *note, seq+1); err != nil {
			return err
		}

		appendLoaded(log, *note)
		out = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteNote removes a single note from a log.
func (s *Store) DeleteNote(ctx context.Context, key models.LogKey, noteID string) (*models.DailyLog, error) {
	var out *models.DailyLog
	err := s.withTx(ctx, func(tx DBTX) error {
		result, err := tx.ExecContext(ctx,
			s.q("DELETE FROM log_notes WHERE id = ? AND event_id = ? AND log_date = ?"),
			noteID, key.EventID, key.Date)
		if err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		if err := expectAffected(result, "note", noteID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			s.q("UPDATE daily_logs SET updated_at = ? WHERE event_id = ? AND log_date = ?"),
			s.now().Unix(), key.EventID, key.Date); err != nil {
			return fmt.Errorf("failed to touch log: %w", err)
		}
		out, err = s.getLog(ctx, tx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearLog removes the log at key and all of its notes.
func (s *Store) ClearLog(ctx context.Context, key models.LogKey) error {
	return s.withTx(ctx, func(tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			s.q("DELETE FROM log_notes WHERE event_id = ? AND log_date = ?"), key.EventID, key.Date); err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			s.q("DELETE FROM daily_logs WHERE event_id = ? AND log_date = ?"), key.EventID, key.Date); err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}
		return nil
	})
}
