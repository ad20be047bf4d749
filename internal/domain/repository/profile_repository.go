package repository

import (
	"context"
	"errors"

	"museum/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByUsername retrieves a single profile by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// FindAll retrieves every profile in store order.
	FindAll(ctx context.Context) ([]*entity.Profile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error

	// DeleteByUsername removes the profile with the given username.
	// Deleting an absent profile is a no-op, not an error.
	DeleteByUsername(ctx context.Context, username string) error
}
