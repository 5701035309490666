package userRepo

import (
	"context"

	"courtside/models"
)

// UserRepository provides access to registered users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id string) error
}
