package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction identifiers are generated sequentially with the TRX prefix.
type Transaction struct {
	ID          string    `gorm:"type:varchar(20);primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User  *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}
