package slotRepo

import (
	"context"

	"courtside/models"
)

// SlotRepository provides access to stored slot records.
type SlotRepository interface {
	CreateMany(ctx context.Context, records []models.SlotRecord) error
	GetBySportAndDate(ctx context.Context, sportID, date string) ([]models.SlotRecord, error)
	GetBySportAndMonth(ctx context.Context, sportID, month, year string) ([]models.SlotRecord, error)
	// Reserve flips the given slots from AVAILABLE to BOOKED, tagging each
	// with the reserving payment id, and returns how many were actually
	// flipped; a short count means a conflicting booking won the race and the
	// caller must release what it took.
	Reserve(ctx context.Context, slots []models.Slot, paymentID string) (int64, error)
	// Release flips slots reserved by the given payment id back to AVAILABLE.
	// Slots held by other attempts are left untouched.
	Release(ctx context.Context, slots []models.Slot, paymentID string) error
	DeleteBySport(ctx context.Context, sportID string) error
}
