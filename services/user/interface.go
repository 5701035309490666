package user

import (
	"context"

	userRepo "courtside/database/repository/user"
	"courtside/models"

	"go.uber.org/zap"
)

// RegisterRequest carries the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserService manages accounts and bearer-token sessions.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	RevokeToken(ctx context.Context, id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
