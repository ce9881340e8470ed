package repository

import (
	"go-faktur-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionItemRepository interface {
	FindAll() ([]model.TransactionItem, error)
	FindByID(id uuid.UUID) (*model.TransactionItem, error)
	Create(item *model.TransactionItem) error
	Update(item *model.TransactionItem) error
	Delete(id uuid.UUID) error
}

type transactionItemRepo struct {
	db *gorm.DB
}

func NewTransactionItemRepo(db *gorm.DB) TransactionItemRepository {
	return &transactionItemRepo{db}
}

func (r *transactionItemRepo) FindAll() ([]model.TransactionItem, error) {
	var items []model.TransactionItem
	err := r.db.Preload("Product").Order("created_at").Find(&items).Error
	return items, err
}

func (r *transactionItemRepo) FindByID(id uuid.UUID) (*model.TransactionItem, error) {
	var item model.TransactionItem
	err := r.db.Preload("Product").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *transactionItemRepo) Create(item *model.TransactionItem) error {
	return r.db.Create(item).Error
}

func (r *transactionItemRepo) Update(item *model.TransactionItem) error {
	return r.db.Save(item).Error
}

func (r *transactionItemRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.TransactionItem{}, "id = ?", id).Error
}
