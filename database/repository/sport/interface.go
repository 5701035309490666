package sportRepo

import (
	"context"

	"courtside/models"
)

// SportRepository provides CRUD access to the sport catalog.
type SportRepository interface {
	Create(ctx context.Context, sport *models.Sport) error
	GetByID(ctx context.Context, id string) (*models.Sport, error)
	List(ctx context.Context, activeOnly bool) ([]models.Sport, error)
	Update(ctx context.Context, sport *models.Sport) error
	Delete(ctx context.Context, id string) error
}
