package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notrecocon/cocon/internal/models"
)

const eventColumns = "id, name, start_date, end_date, is_evergreen, created_by, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		ev         models.Event
		start, end sql.NullString
		createdBy  string
	)
	if err := row.Scan(&ev.ID, &ev.Name, &start, &end, &ev.IsEvergreen, &createdBy, &ev.CreatedAt); err != nil {
		return nil, err
	}
	ev.StartDate = start.String
	ev.EndDate = end.String
	ev.CreatedBy = models.Role(createdBy)
	return &ev, nil
}

// ListEvents returns all events.
func (s *Store) ListEvents(ctx context.Context) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+eventColumns+" FROM events")
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// GetEvent retrieves an event by ID.
func (s *Store) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return s.getEvent(ctx, s.db, eventID)
}

func (s *Store) getEvent(ctx context.Context, db DBTX, eventID string) (*models.Event, error) {
	ev, err := scanEvent(db.QueryRowContext(ctx,
		s.q("SELECT "+eventColumns+" FROM events WHERE id = ?"), eventID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("event", eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return ev, nil
}

// CreateEvent persists a new event.
func (s *Store) CreateEvent(ctx context.Context, ev *models.Event) error {
	if ev.ID == "" {
		ev.ID = s.newID()
	}
	if ev.CreatedAt == 0 {
		ev.CreatedAt = s.now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		s.q("INSERT INTO events ("+eventColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)"),
		ev.ID, ev.Name, nullString(ev.StartDate), nullString(ev.EndDate), ev.IsEvergreen, string(ev.CreatedBy), ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// UpdateEvent overwrites the mutable fields of an existing event.
func (s *Store) UpdateEvent(ctx context.Context, ev *models.Event) error {
	result, err := s.db.ExecContext(ctx,
		s.q("UPDATE events SET name = ?, start_date = ?, end_date = ?, is_evergreen = ? WHERE id = ?"),
		ev.Name, nullString(ev.StartDate), nullString(ev.EndDate), ev.IsEvergreen, ev.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return expectAffected(result, "event", ev.ID)
}

// DeleteEventCascade removes an event and all of its logs and notes.
func (s *Store) DeleteEventCascade(ctx context.Context, eventID string) error {
	return s.withTx(ctx, func(tx DBTX) error {
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM log_notes WHERE event_id = ?"), eventID); err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM daily_logs WHERE event_id = ?"), eventID); err != nil {
			return fmt.Errorf("failed to delete logs: %w", err)
		}
		result, err := tx.ExecContext(ctx, s.q("DELETE FROM events WHERE id = ?"), eventID)
		if err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return expectAffected(result, "event", eventID)
	})
}

// ResetAll deletes all logs and notes and every event except keepEventID.
func (s *Store) ResetAll(ctx context.Context, keepEventID string) error {
	return s.withTx(ctx, func(tx DBTX) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM log_notes"); err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM daily_logs"); err != nil {
			return fmt.Errorf("failed to delete logs: %w", err)
		}
		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM events WHERE id <> ?"), keepEventID); err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		return nil
	})
}

func expectAffected(result sql.Result, what, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return notFound(what, id)
	}
	return nil
}
