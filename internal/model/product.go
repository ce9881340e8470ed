package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	ProductCode string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"product_code" validate:"required"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Stock       int       `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"category_id" validate:"uuid_required"`
	SupplierID  string    `gorm:"type:varchar(20);not null" json:"supplier_id" validate:"required"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
