package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"
	"go-faktur-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const transactionIDPrefix = "TRX"

type TransactionService interface {
	GetAll() ([]model.Transaction, error)
	GetByID(id string) (*model.Transaction, error)
	Create(req *CreateTransactionRequest) (*model.Transaction, error)
	Update(id string, req *UpdateTransactionRequest) (*model.Transaction, error)
	Delete(id string) error
}

type CreateTransactionRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"uuid_required"`
	Type        string    `json:"type" validate:"required"`
	Description string    `json:"description" validate:"required"`
}

// UpdateTransactionRequest covers the mutable fields only.
type UpdateTransactionRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"uuid_required"`
	Type   string    `json:"type" validate:"required"`
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
	db              *gorm.DB
	hub             *ws.Hub
}

func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	db *gorm.DB,
	hub *ws.Hub,
) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		db:              db,
		hub:             hub,
	}
}

func (s *transactionService) GetAll() ([]model.Transaction, error) {
	transactions, err := s.transactionRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch transactions", err)
	}
	return transactions, nil
}

func (s *transactionService) GetByID(id string) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "transaction not found")
	}
	return transaction, nil
}

// Create allocates the next TRX id and inserts the row in one database
// transaction, retrying the allocation when a concurrent caller won the
// same id.
func (s *transactionService) Create(req *CreateTransactionRequest) (*model.Transaction, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, classify(err, "user not found")
	}

	transaction := &model.Transaction{
		UserID:      req.UserID,
		Type:        req.Type,
		Description: req.Description,
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		lastErr = s.db.Transaction(func(tx *gorm.DB) error {
			id, err := repository.NextSequentialID(tx, &model.Transaction{}, transactionIDPrefix, repository.SeqIDWidth)
			if err != nil {
				return err
			}
			transaction.ID = id
			return s.transactionRepo.Create(tx, transaction)
		})
		if lastErr == nil {
			s.hub.Publish("transaction_created", "transaksi", transaction)
			return transaction, nil
		}
		if !isDuplicateKey(lastErr) {
			return nil, apperr.Wrap(apperr.Internal, "failed to create transaction", lastErr)
		}
	}
	return nil, apperr.Wrap(apperr.Internal, "failed to allocate transaction id", lastErr)
}

func (s *transactionService) Update(id string, req *UpdateTransactionRequest) (*model.Transaction, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "transaction not found")
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, classify(err, "user not found")
	}

	existing.UserID = req.UserID
	existing.Type = req.Type
	existing.User = nil
	existing.Items = nil
	if err := s.transactionRepo.Update(existing); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update transaction", err)
	}
	return existing, nil
}

func (s *transactionService) Delete(id string) error {
	if _, err := s.transactionRepo.FindByID(id); err != nil {
		return classify(err, "transaction not found")
	}
	if err := s.transactionRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete transaction", err)
	}
	return nil
}
