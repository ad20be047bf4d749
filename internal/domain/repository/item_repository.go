package repository

import (
	"context"
	"errors"

	"museum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is a domain-specific error returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the standard operations for catalog item persistence.
type ItemRepository interface {
	// FindByID retrieves a single item by its system-assigned ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindAll retrieves every item in store order.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// Create persists a new item entity to the storage.
	Create(ctx context.Context, item *entity.Item) error

	// Update modifies an existing item entity in the storage.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes the item with the given ID. Deleting an absent item is a
	// no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
