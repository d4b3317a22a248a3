package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
)

func newPostgresMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, DialectPostgres), mock
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: DialectPostgres}
	lite := &Store{dialect: DialectSQLite}
	query := "UPDATE events SET name = ? WHERE id = ? AND created_by = ?"

	assert.Equal(t, "UPDATE events SET name = $1 WHERE id = $2 AND created_by = $3", pg.q(query))
	assert.Equal(t, query, lite.q(query))
}

func TestPostgresGetEvent(t *testing.T) {
	store, mock := newPostgresMock(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "start_date", "end_date", "is_evergreen", "created_by", "created_at"}).
			AddRow("e1", "Lisbon", "2024-06-01", "2024-06-10", false, "editor", int64(10))
		mock.ExpectQuery(`(?s)^SELECT .+ FROM events WHERE id = \$1$`).
			WithArgs("e1").
			WillReturnRows(rows)

		ev, err := store.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", ev.Name)
		assert.Equal(t, models.RoleEditor, ev.CreatedBy)
	})

	t.Run("evergreen with null dates", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "start_date", "end_date", "is_evergreen", "created_by", "created_at"}).
			AddRow(models.EvergreenEventID, "Daily Life", nil, nil, true, "editor", int64(10))
		mock.ExpectQuery(`FROM events WHERE id = \$1`).
			WithArgs(models.EvergreenEventID).
			WillReturnRows(rows)

		ev, err := store.GetEvent(ctx, models.EvergreenEventID)
		require.NoError(t, err)
		assert.True(t, ev.IsEvergreen)
		assert.Empty(t, ev.StartDate)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM events WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := store.GetEvent(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveSettings(t *testing.T) {
	store, mock := newPostgresMock(t)

	mock.ExpectExec(`(?s)^INSERT INTO settings .+ VALUES \(\$1, \$2, \$3, \$4\).+ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(models.SettingsID, "eh", "ph", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.SaveSettings(context.Background(), &models.AppSettings{EditorCodeHash: "eh", PartnerCodeHash: "ph", UpdatedAt: 42})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteEventCascade(t *testing.T) {
	t.Run("commits all deletes together", func(t *testing.T) {
		store, mock := newPostgresMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM log_notes WHERE event_id = \$1`).WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM daily_logs WHERE event_id = \$1`).WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, store.DeleteEventCascade(context.Background(), "e1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a delete fails", func(t *testing.T) {
		store, mock := newPostgresMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM log_notes`).WithArgs("e1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM daily_logs`).WithArgs("e1").WillReturnError(errors.New("db down"))
		mock.ExpectRollback()

		err := store.DeleteEventCascade(context.Background(), "e1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing event rolls back with ErrNotFound", func(t *testing.T) {
		store, mock := newPostgresMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM log_notes`).WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM daily_logs`).WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM events`).WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.DeleteEventCascade(context.Background(), "gone")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunMigrationsUsesDialectDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var dirs []string
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		dirs = append(dirs, dir)
		return nil
	}
	defer func() { gooseUpContext = orig }()

	require.NoError(t, runMigrations(context.Background(), db, DialectPostgres))
	require.NoError(t, runMigrations(context.Background(), db, DialectSQLite))
	assert.Equal(t, []string{"migrations/postgres", "migrations/sqlite"}, dirs)

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	assert.Error(t, runMigrations(context.Background(), db, DialectPostgres))
}
