package model

import "time"

// Supplier carries a human-readable identifier: either client-supplied
// or generated sequentially with the SUP prefix.
type Supplier struct {
	ID          string    `gorm:"type:varchar(20);primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	ContactInfo string    `gorm:"type:varchar(255);not null" json:"contact_info" validate:"required"`
	Address     string    `gorm:"type:text;not null" json:"address" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
