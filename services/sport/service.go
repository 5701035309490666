package sport

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"courtside/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create adds a sport to the catalog.
func (s *DefaultSportService) Create(ctx context.Context, sport *models.Sport) (*models.Sport, error) {
	sport.Name = strings.TrimSpace(sport.Name)
	if sport.Name == "" {
		return nil, fmt.Errorf("sport name is required")
	}
	if sport.ID == "" {
		sport.ID = uuid.New().String()
	}
	if sport.Currency == "" {
		sport.Currency = "INR"
	}
	now := time.Now()
	sport.Active = true
	sport.CreatedAt = now
	sport.UpdatedAt = now
	if err := s.Repo.Create(ctx, sport); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	s.Logger.Info("sport created", zap.String("sportId", sport.ID), zap.String("name", sport.Name))
	return sport, nil
}

// GetByID loads a sport by id.
func (s *DefaultSportService) GetByID(ctx context.Context, id string) (*models.Sport, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns the catalog, optionally only active sports. Listings are
// served from the cache when possible; catalog writes invalidate it.
func (s *DefaultSportService) List(ctx context.Context, activeOnly bool) ([]models.Sport, error) {
	key := catalogKey(activeOnly)
	if s.Cache != nil {
		if data, ok := s.Cache.Get(ctx, key); ok {
			var sports []models.Sport
			if err := json.Unmarshal([]byte(data), &sports); err == nil {
				return sports, nil
			}
		}
	}

	sports, err := s.Repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if data, jerr := json.Marshal(sports); jerr == nil {
			if cerr := s.Cache.Set(ctx, key, string(data), catalogTTL); cerr != nil {
				s.Logger.Warn("failed to cache sport catalog", zap.Error(cerr))
			}
		}
	}
	return sports, nil
}

func (s *DefaultSportService) invalidateCatalog(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, catalogKey(true), catalogKey(false)); err != nil {
		s.Logger.Warn("failed to invalidate sport catalog cache", zap.Error(err))
	}
}

// Update replaces a sport's catalog entry.
func (s *DefaultSportService) Update(ctx context.Context, sport *models.Sport) (*models.Sport, error) {
	existing, err := s.Repo.GetByID(ctx, sport.ID)
	if err != nil {
		return nil, err
	}
	sport.CreatedAt = existing.CreatedAt
	sport.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, sport); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return sport, nil
}

// Delete removes a sport and every slot published for it.
func (s *DefaultSportService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Slots.DeleteBySport(ctx, id); err != nil {
		s.Logger.Error("failed to delete slots for removed sport", zap.String("sportId", id), zap.Error(err))
		return err
	}
	s.invalidateCatalog(ctx)
	s.Logger.Info("sport deleted", zap.String("sportId", id))
	return nil
}

// GenerateSlots publishes hourly day slots for each requested date and
// returns how many were created. Slots are stored unpriced; availability
// pricing falls back to the sport's day rate.
func (s *DefaultSportService) GenerateSlots(ctx context.Context, req GenerateSlotsRequest) (int, error) {
	sport, err := s.Repo.GetByID(ctx, req.SportID)
	if err != nil {
		return 0, err
	}
	if req.EndHour <= req.StartHour {
		return 0, fmt.Errorf("end_hour must be after start_hour")
	}

	records := make([]models.SlotRecord, 0, len(req.Dates)*(req.EndHour-req.StartHour))
	for _, date := range req.Dates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
		}
		for h := req.StartHour; h < req.EndHour; h++ {
			records = append(records, models.SlotRecord{
				SportID:   sport.ID,
				SlotType:  models.SlotTypeDay,
				Date:      date,
				StartTime: fmt.Sprintf("%02d:00", h),
				EndTime:   fmt.Sprintf("%02d:00", h+1),
				Status:    models.SlotStatusAvailable,
				SportName: sport.Name,
			})
		}
	}
	if err := s.Slots.CreateMany(ctx, records); err != nil {
		return 0, err
	}
	s.Logger.Info("slots published",
		zap.String("sportId", sport.ID), zap.Int("count", len(records)))
	return len(records), nil
}
