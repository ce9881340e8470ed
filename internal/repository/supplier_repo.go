package repository

import (
	"go-faktur-api/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	FindAll() ([]model.Supplier, error)
	FindByID(id string) (*model.Supplier, error)
	Create(tx *gorm.DB, supplier *model.Supplier) error
	Update(supplier *model.Supplier) error
	Delete(id string) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("id").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Create takes *gorm.DB so the insert can share a transaction with the
// sequential id generation.
func (r *supplierRepo) Create(tx *gorm.DB, supplier *model.Supplier) error {
	return tx.Create(supplier).Error
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id string) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}
