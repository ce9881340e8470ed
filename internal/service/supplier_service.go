package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"
	"go-faktur-api/internal/ws"

	"gorm.io/gorm"
)

const supplierIDPrefix = "SUP"

type SupplierService interface {
	GetAll() ([]model.Supplier, error)
	GetByID(id string) (*model.Supplier, error)
	Create(supplier *model.Supplier) error
	Update(id string, supplier *model.Supplier) (*model.Supplier, error)
	Delete(id string) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	db           *gorm.DB
	hub          *ws.Hub
}

func NewSupplierService(supplierRepo repository.SupplierRepository, db *gorm.DB, hub *ws.Hub) SupplierService {
	return &supplierService{supplierRepo: supplierRepo, db: db, hub: hub}
}

func (s *supplierService) GetAll() ([]model.Supplier, error) {
	suppliers, err := s.supplierRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch suppliers", err)
	}
	return suppliers, nil
}

func (s *supplierService) GetByID(id string) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "supplier not found")
	}
	return supplier, nil
}

// Create inserts the supplier, generating a SUP-prefixed sequential id
// when the client supplied none. Generation and insert share one
// database transaction; a duplicate key from a concurrent caller
// retries the generation.
func (s *supplierService) Create(supplier *model.Supplier) error {
	if err := validateStruct(supplier); err != nil {
		return err
	}

	if supplier.ID != "" {
		if existing, _ := s.supplierRepo.FindByID(supplier.ID); existing != nil {
			return apperr.New(apperr.Conflict, "supplier id already exists")
		}
		if err := s.supplierRepo.Create(s.db, supplier); err != nil {
			if isDuplicateKey(err) {
				return apperr.New(apperr.Conflict, "supplier id already exists")
			}
			return apperr.Wrap(apperr.Internal, "failed to create supplier", err)
		}
		s.hub.Publish("supplier_created", "suppliers", supplier)
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		lastErr = s.db.Transaction(func(tx *gorm.DB) error {
			id, err := repository.NextSequentialID(tx, &model.Supplier{}, supplierIDPrefix, repository.SeqIDWidth)
			if err != nil {
				return err
			}
			supplier.ID = id
			return s.supplierRepo.Create(tx, supplier)
		})
		if lastErr == nil {
			s.hub.Publish("supplier_created", "suppliers", supplier)
			return nil
		}
		if !isDuplicateKey(lastErr) {
			return apperr.Wrap(apperr.Internal, "failed to create supplier", lastErr)
		}
	}
	return apperr.Wrap(apperr.Internal, "failed to allocate supplier id", lastErr)
}

func (s *supplierService) Update(id string, supplier *model.Supplier) (*model.Supplier, error) {
	if err := validateStruct(supplier); err != nil {
		return nil, err
	}

	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "supplier not found")
	}

	existing.Name = supplier.Name
	existing.ContactInfo = supplier.ContactInfo
	existing.Address = supplier.Address
	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update supplier", err)
	}
	return existing, nil
}

func (s *supplierService) Delete(id string) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return classify(err, "supplier not found")
	}
	if err := s.supplierRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete supplier", err)
	}
	return nil
}
