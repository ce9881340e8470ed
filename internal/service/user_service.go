package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"

	"github.com/google/uuid"
)

type UserService interface {
	GetAll() ([]model.UserResponse, error)
	GetByID(id uuid.UUID) (*model.UserResponse, error)
	UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*model.UserResponse, error)
}

// UpdateRoleRequest is the only account mutation: accounts are
// immutable except for the role and are never deleted.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin staff"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAll() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to fetch users", err)
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "user not found")
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*model.UserResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(id); err != nil {
		return nil, classify(err, "user not found")
	}
	if err := s.userRepo.UpdateRole(id, req.Role); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update role", err)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, classify(err, "user not found")
	}
	resp := user.ToResponse()
	return &resp, nil
}
