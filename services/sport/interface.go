package sport

import (
	"context"

	slotRepo "courtside/database/repository/slot"
	sportRepo "courtside/database/repository/sport"
	"courtside/models"

	"go.uber.org/zap"
)

// GenerateSlotsRequest describes a batch of hourly day slots to publish for a
// sport. Hours are 24-hour clock; EndHour is exclusive.
type GenerateSlotsRequest struct {
	SportID   string   `json:"sports_id" binding:"required"`
	Dates     []string `json:"dates" binding:"required,min=1"` // "YYYY-MM-DD"
	StartHour int      `json:"start_hour" binding:"min=0,max=23"`
	EndHour   int      `json:"end_hour" binding:"required,min=1,max=24"`
}

// SportService manages the sport catalog and its published slots.
type SportService interface {
	Create(ctx context.Context, sport *models.Sport) (*models.Sport, error)
	GetByID(ctx context.Context, id string) (*models.Sport, error)
	List(ctx context.Context, activeOnly bool) ([]models.Sport, error)
	Update(ctx context.Context, sport *models.Sport) (*models.Sport, error)
	Delete(ctx context.Context, id string) error
	GenerateSlots(ctx context.Context, req GenerateSlotsRequest) (int, error)
}

// DefaultSportService implements SportService. Cache is optional; without
// one every listing goes straight to the repository.
type DefaultSportService struct {
	Repo   sportRepo.SportRepository
	Slots  slotRepo.SlotRepository
	Cache  CatalogCache
	Logger *zap.Logger
}
