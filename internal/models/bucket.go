package models

// BucketListItem is a shared wish that either role can add or tick off.
// Items are not scoped to an event.
type BucketListItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Text is what the couple wants to do.
	Text string

	// Completed is true once the item has been done.
	Completed bool

	// CreatedAt is the Unix timestamp when the item was added.
	CreatedAt int64

	// CreatedBy is the role that added the item.
	CreatedBy Role
}
