// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the private, credential-bearing identity record. The username is
// the domain key; PasswordHash holds the encoded argon2id token and must never
// be serialized back to a caller.
type Account struct {
	ID           uuid.UUID `json:"id"`       // Surrogate identifier assigned by the store.
	Username     string    `json:"username"` // Globally unique login name; mutable only through an explicit rename.
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	PasswordHash string    `json:"-"` // Encoded hash of the most recently set password. Never the plaintext.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public projection of an Account. It carries the same username
// as exactly one Account at all times: the pair is created, renamed and
// deleted together.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
