package model

import "github.com/google/uuid"

// TransactionItem is one product-quantity-price line belonging to a
// transaction. The transaction and product must exist at creation time.
type TransactionItem struct {
	BaseModel
	TransactionID string    `gorm:"type:varchar(20);not null;index" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
	SupplierID    *string   `gorm:"type:varchar(20)" json:"supplier_id,omitempty"`

	// Relations
	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	Product     *Product     `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Supplier    *Supplier    `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
