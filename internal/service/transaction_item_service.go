package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"

	"github.com/google/uuid"
)

type TransactionItemService interface {
	GetAll() ([]model.TransactionItem, error)
	GetByID(id uuid.UUID) (*model.TransactionItem, error)
	Create(req *TransactionItemRequest) (*model.TransactionItem, error)
	Update(id uuid.UUID, req *TransactionItemRequest) (*model.TransactionItem, error)
	Delete(id uuid.UUID) error
}

type TransactionItemRequest struct {
	TransactionID string    `json:"transaction_id" validate:"required"`
	ProductID     uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity      int       `json:"quantity" validate:"gt=0"`
	Price         float64   `json:"price" validate:"gte=0"`
	SupplierID    *string   `json:"supplier_id"`
}

type transactionItemService struct {
	itemRepo        repository.TransactionItemRepository
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	supplierRepo    repository.SupplierRepository
}

func NewTransactionItemService(
	itemRepo repository.TransactionItemRepository,
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) TransactionItemService {
	return &transactionItemService{
		itemRepo:        itemRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		supplierRepo:    supplierRepo,
	}
}

func (s *transactionItemService) GetAll() ([]model.TransactionItem, error) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch transaction items", err)
	}
	return items, nil
}

func (s *transactionItemService) GetByID(id uuid.UUID) (*model.TransactionItem, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "transaction item not found")
	}
	return item, nil
}

// checkRefs verifies the transaction, product and optional supplier
// references resolve before touching the row.
func (s *transactionItemService) checkRefs(req *TransactionItemRequest) error {
	if _, err := s.transactionRepo.FindByID(req.TransactionID); err != nil {
		return classify(err, "transaction not found")
	}
	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return classify(err, "product not found")
	}
	if req.SupplierID != nil && *req.SupplierID != "" {
		if _, err := s.supplierRepo.FindByID(*req.SupplierID); err != nil {
			return classify(err, "supplier not found")
		}
	}
	return nil
}

func (s *transactionItemService) Create(req *TransactionItemRequest) (*model.TransactionItem, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.checkRefs(req); err != nil {
		return nil, err
	}

	item := &model.TransactionItem{
		TransactionID: req.TransactionID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Price:         req.Price,
		SupplierID:    req.SupplierID,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create transaction item", err)
	}
	return item, nil
}

func (s *transactionItemService) Update(id uuid.UUID, req *TransactionItemRequest) (*model.TransactionItem, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "transaction item not found")
	}

	if err := s.checkRefs(req); err != nil {
		return nil, err
	}

	existing.TransactionID = req.TransactionID
	existing.ProductID = req.ProductID
	existing.Quantity = req.Quantity
	existing.Price = req.Price
	existing.SupplierID = req.SupplierID
	existing.Transaction = nil
	existing.Product = nil
	existing.Supplier = nil
	if err := s.itemRepo.Update(existing); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update transaction item", err)
	}
	return existing, nil
}

func (s *transactionItemService) Delete(id uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(id); err != nil {
		return classify(err, "transaction item not found")
	}
	if err := s.itemRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete transaction item", err)
	}
	return nil
}
