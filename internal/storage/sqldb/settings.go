package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notrecocon/cocon/internal/models"
)

// GetSettings retrieves the access-code settings record.
func (s *Store) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	settings := &models.AppSettings{}
	err := s.db.QueryRowContext(ctx,
		s.q("SELECT editor_code_hash, partner_code_hash, updated_at FROM settings WHERE id = ?"),
		models.SettingsID,
	).Scan(&settings.EditorCodeHash, &settings.PartnerCodeHash, &settings.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("settings", models.SettingsID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// SaveSettings creates or replaces the settings record.
func (s *Store) SaveSettings(ctx context.Context, settings *models.AppSettings) error {
	if settings.UpdatedAt == 0 {
		settings.UpdatedAt = s.now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		s.q(`INSERT INTO settings (id, editor_code_hash, partner_code_hash, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				editor_code_hash = excluded.editor_code_hash,
				partner_code_hash = excluded.partner_code_hash,
				updated_at = excluded.updated_at`),
		models.SettingsID, settings.EditorCodeHash, settings.PartnerCodeHash, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
