package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Path       string    `gorm:"type:varchar(255)"`
	FirstName  string    `gorm:"type:varchar(100)"`
	LastName   string    `gorm:"type:varchar(100)"`
	Gender     string    `gorm:"type:varchar(50)"`
	Membership string    `gorm:"type:varchar(100)"`
	Part       string    `gorm:"type:varchar(100)"`
	Age        string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
