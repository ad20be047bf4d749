// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"museum/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateAccountInput defines the mutable account fields. Nil pointers mean
// "leave unchanged"; the username in the path selects the account.
type UpdateAccountInput struct {
	Username    string
	NewUsername *string
	NewPassword *string
	FirstName   *string
	LastName    *string
}

// --- Output DTOs ---

// AccountView is the outward projection of an account. It deliberately has no
// password hash field, so handlers cannot leak one by accident.
type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAccountView builds the redacted projection from an account entity.
func NewAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ID:        account.ID,
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// AccountOutput returns the redacted account together with its paired profile.
type AccountOutput struct {
	Account *AccountView
	Profile *entity.Profile
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AccountOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AccountOutput, error)
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
	Update(ctx context.Context, input *UpdateAccountInput) (*AccountOutput, error)
	Delete(ctx context.Context, username string) error
}
