package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/notrecocon/cocon/internal/models"
)

func scanBucketItem(row rowScanner) (*models.BucketListItem, error) {
	var (
		item      models.BucketListItem
		createdBy string
	)
	if err := row.Scan(&item.ID, &item.Text, &item.Completed, &item.CreatedAt, &createdBy); err != nil {
		return nil, err
	}
	item.CreatedBy = models.Role(createdBy)
	return &item, nil
}

// ListBucketItems returns the bucket list, newest first.
func (s *Store) ListBucketItems(ctx context.Context) ([]*models.BucketListItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, body, completed, created_at, created_by FROM bucket_list ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket items: %w", err)
	}
	defer rows.Close()

	var items []*models.BucketListItem
	for rows.Next() {
		item, err := scanBucketItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bucket item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bucket items: %w", err)
	}
	return items, nil
}

// CreateBucketItem persists a new bucket list item.
func (s *Store) CreateBucketItem(ctx context.Context, item *models.BucketListItem) error {
	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = s.now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		s.q("INSERT INTO bucket_list (id, body, completed, created_at, created_by) VALUES (?, ?, ?, ?, ?)"),
		item.ID, item.Text, item.Completed, item.CreatedAt, string(item.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bucket item: %w", err)
	}
	return nil
}

// SetBucketItemCompleted updates the completion flag of an item.
func (s *Store) SetBucketItemCompleted(ctx context.Context, itemID string, completed bool) (*models.BucketListItem, error) {
	result, err := s.db.ExecContext(ctx,
		s.q("UPDATE bucket_list SET completed = ? WHERE id = ?"), completed, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to update bucket item: %w", err)
	}
	if err := expectAffected(result, "bucket item", itemID); err != nil {
		return nil, err
	}

	item, err := scanBucketItem(s.db.QueryRowContext(ctx,
		s.q("SELECT id, body, completed, created_at, created_by FROM bucket_list WHERE id = ?"), itemID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("bucket item", itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket item: %w", err)
	}
	return item, nil
}

// DeleteBucketItem removes an item from the bucket list.
func (s *Store) DeleteBucketItem(ctx context.Context, itemID string) error {
	result, err := s.db.ExecContext(ctx, s.q("DELETE FROM bucket_list WHERE id = ?"), itemID)
	if err != nil {
		return fmt.Errorf("failed to delete bucket item: %w", err)
	}
	return expectAffected(result, "bucket item", itemID)
}
