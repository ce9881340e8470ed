package repository

import (
	"go-faktur-api/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindAll() ([]model.Transaction, error)
	FindByID(id string) (*model.Transaction, error)
	Create(tx *gorm.DB, transaction *model.Transaction) error
	Update(transaction *model.Transaction) error
	Delete(id string) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("User").Order("id").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id string) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("User").Preload("Items").First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Create takes *gorm.DB so the insert can share a transaction with the
// sequential id generation.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) Update(transaction *model.Transaction) error {
	return r.db.Save(transaction).Error
}

func (r *transactionRepo) Delete(id string) error {
	return r.db.Delete(&model.Transaction{}, "id = ?", id).Error
}
