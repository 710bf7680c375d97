package services

import (
	"context"

	"vedang.dev/models"
	"vedang.dev/repositories"
)

// AuthServiceError is the typed error for panel authentication.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

// ErrInvalidCredentials covers both unknown email and wrong password, so the
// login form leaks nothing about which one failed.
const ErrInvalidCredentials AuthServiceError = "invalid email or password"

// IAuthService authenticates the panel owner.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	repo repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewUserRepository()}
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err == repositories.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindUserByID(id)
	if err == repositories.ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	return user, err
}
