package journal

import (
	"context"
	"strings"

	"github.com/notrecocon/cocon/internal/models"
)

// ListBucketItems returns the shared bucket list, newest first.
func (j *Journal) ListBucketItems(ctx context.Context) ([]*models.BucketListItem, error) {
	return j.store.ListBucketItems(ctx)
}

// AddBucketItem adds an item on behalf of either role.
func (j *Journal) AddBucketItem(ctx context.Context, role models.Role, text string) (*models.BucketListItem, error) {
	if err := requireRole(role); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	item := &models.BucketListItem{Text: text, CreatedBy: role, CreatedAt: j.now().Unix()}
	if err := j.store.CreateBucketItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleBucketItem marks an item done or not done. Either role may do this.
func (j *Journal) ToggleBucketItem(ctx context.Context, role models.Role, itemID string, completed bool) (*models.BucketListItem, error) {
	if err := requireRole(role); err != nil {
		return nil, err
	}
	return j.store.SetBucketItemCompleted(ctx, itemID, completed)
}

// DeleteBucketItem removes an item. Editor only.
func (j *Journal) DeleteBucketItem(ctx context.Context, role models.Role, itemID string) error {
	if err := models.RequireEditor(role); err != nil {
		return err
	}
	return j.store.DeleteBucketItem(ctx, itemID)
}
