package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"
	"go-faktur-api/internal/ws"

	"github.com/google/uuid"
)

type ProductService interface {
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
	GetByCode(code string) (*model.Product, error)
	GetByCategory(categoryID uuid.UUID) ([]model.Product, error)
	GetBySupplier(supplierID string) ([]model.Product, error)
	Create(product *model.Product) error
	Update(id uuid.UUID, product *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	hub          *ws.Hub
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	hub *ws.Hub,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		hub:          hub,
	}
}

func (s *productService) GetAll() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch products", err)
	}
	return products, nil
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "product not found")
	}
	return product, nil
}

func (s *productService) GetByCode(code string) (*model.Product, error) {
	product, err := s.productRepo.FindByCode(code)
	if err != nil {
		return nil, classify(err, "product not found")
	}
	return product, nil
}

func (s *productService) GetByCategory(categoryID uuid.UUID) ([]model.Product, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		return nil, classify(err, "category not found")
	}
	products, err := s.productRepo.FindByCategory(categoryID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch products", err)
	}
	return products, nil
}

func (s *productService) GetBySupplier(supplierID string) ([]model.Product, error) {
	if _, err := s.supplierRepo.FindByID(supplierID); err != nil {
		return nil, classify(err, "supplier not found")
	}
	products, err := s.productRepo.FindBySupplier(supplierID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch products", err)
	}
	return products, nil
}

// checkRefs verifies the category and supplier references resolve.
func (s *productService) checkRefs(product *model.Product) error {
	if _, err := s.categoryRepo.FindByID(product.CategoryID); err != nil {
		return classify(err, "category not found")
	}
	if _, err := s.supplierRepo.FindByID(product.SupplierID); err != nil {
		return classify(err, "supplier not found")
	}
	return nil
}

func (s *productService) Create(product *model.Product) error {
	if err := validateStruct(product); err != nil {
		return err
	}

	if existing, _ := s.productRepo.FindByCode(product.ProductCode); existing != nil {
		return apperr.New(apperr.Conflict, "product code already exists")
	}

	if err := s.checkRefs(product); err != nil {
		return err
	}

	if err := s.productRepo.Create(product); err != nil {
		if isDuplicateKey(err) {
			return apperr.New(apperr.Conflict, "product code already exists")
		}
		return apperr.Wrap(apperr.Internal, "failed to create product", err)
	}

	s.hub.Publish("product_created", "products", product)
	return nil
}

func (s *productService) Update(id uuid.UUID, product *model.Product) (*model.Product, error) {
	if err := validateStruct(product); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "product not found")
	}

	if byCode, _ := s.productRepo.FindByCode(product.ProductCode); byCode != nil && byCode.ID != id {
		return nil, apperr.New(apperr.Conflict, "product code already used by another product")
	}

	if err := s.checkRefs(product); err != nil {
		return nil, err
	}

	existing.ProductCode = product.ProductCode
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.CategoryID = product.CategoryID
	existing.SupplierID = product.SupplierID
	existing.Category = nil
	existing.Supplier = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update product", err)
	}

	s.hub.Publish("product_updated", "products", existing)
	return existing, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return classify(err, "product not found")
	}
	if err := s.productRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete product", err)
	}
	return nil
}
