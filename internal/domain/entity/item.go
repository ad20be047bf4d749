package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry: a stored image path plus descriptive display
// fields. Items are independent of the account subsystem.
type Item struct {
	ID         uuid.UUID `json:"id"`   // System-assigned identifier.
	Path       string    `json:"path"` // Public path of the uploaded image.
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Membership string    `json:"membership,omitempty"`
	Part       string    `json:"part,omitempty"`
	Age        string    `json:"age,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
