package service

import (
	"go-faktur-api/internal/apperr"
	"go-faktur-api/internal/model"
	"go-faktur-api/internal/repository"
	"go-faktur-api/pkg/jwt"
)

type AuthService interface {
	Register(req *RegisterRequest) (*model.UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Service) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req *RegisterRequest) (*model.UserResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Email must be unique
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	}

	role := req.Role
	if role == "" {
		role = model.RoleStaff
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.New(apperr.Conflict, "email already registered")
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to create user", err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, classify(err, "user not found")
	}

	if !user.CheckPassword(req.Password) {
		return nil, apperr.New(apperr.Unauthorized, "wrong password")
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to generate token", err)
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}
