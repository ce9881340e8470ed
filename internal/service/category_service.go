package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"

	"github.com/google/uuid"
)

type CategoryService interface {
	GetAll() ([]model.Category, error)
	GetByID(id uuid.UUID) (*model.Category, error)
	Create(category *model.Category) error
	Update(id uuid.UUID, category *model.Category) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAll() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch categories", err)
	}
	return categories, nil
}

func (s *categoryService) GetByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "category not found")
	}
	return category, nil
}

func (s *categoryService) Create(category *model.Category) error {
	if err := validateStruct(category); err != nil {
		return err
	}

	if existing, _ := s.categoryRepo.FindByName(category.Name); existing != nil {
		return apperr.New(apperr.Conflict, "category name already exists")
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if isDuplicateKey(err) {
			return apperr.New(apperr.Conflict, "category name already exists")
		}
		return apperr.Wrap(apperr.Internal, "failed to create category", err)
	}
	return nil
}

func (s *categoryService) Update(id uuid.UUID, category *model.Category) (*model.Category, error) {
	if err := validateStruct(category); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "category not found")
	}

	// Renaming onto another category's name is a conflict
	if byName, _ := s.categoryRepo.FindByName(category.Name); byName != nil && byName.ID != id {
		return nil, apperr.New(apperr.Conflict, "category name already used by another category")
	}

	existing.Name = category.Name
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update category", err)
	}
	return existing, nil
}

func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return classify(err, "category not found")
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete category", err)
	}
	return nil
}
