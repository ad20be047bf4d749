package usecase

import (
	"context"

	"museum/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateItemInput defines the data required to catalog a new item. Path is the
// stored location of a previously uploaded photo.
type CreateItemInput struct {
	Path       string
	FirstName  string
	LastName   string
	Gender     string
	Membership string
	Part       string
	Age        string
}

// UpdateItemInput defines the mutable item display fields. Nil pointers mean
// "leave unchanged".
type UpdateItemInput struct {
	ID         uuid.UUID
	Path       *string
	FirstName  *string
	LastName   *string
	Gender     *string
	Membership *string
	Part       *string
	Age        *string
}

// ItemUsecase defines the interface for catalog item operations.
type ItemUsecase interface {
	Create(ctx context.Context, input *CreateItemInput) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	Update(ctx context.Context, input *UpdateItemInput) (*entity.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
