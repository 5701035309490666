package booking

import (
	"context"
	"fmt"
	"time"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// FetchAvailableSlots loads the candidate slots for a sport on a calendar
// date (day mode) or an abbreviated month plus year (month mode) and
// normalizes them into uniform slot records. Failures yield an empty list
// alongside the error so callers never render a nil candidate set.
func (s *DefaultBookingService) FetchAvailableSlots(ctx context.Context, sportID, slotType, date, month, year string) ([]models.Slot, error) {
	if sportID == "" {
		return []models.Slot{}, NewValidationError("sports_id is required")
	}
	sport, err := s.SportRepo.GetByID(ctx, sportID)
	if err != nil {
		return []models.Slot{}, NewNotFoundError("sport not found")
	}

	var records []models.SlotRecord
	switch slotType {
	case models.SlotTypeMonth:
		if !utils.ValidMonthAbbrev(month) {
			return []models.Slot{}, NewValidationError("type_month must be a 3-letter month abbreviation (JAN..DEC)")
		}
		if len(year) != 4 {
			return []models.Slot{}, NewValidationError("type_year must be a 4-digit year")
		}
		records, err = s.SlotRepo.GetBySportAndMonth(ctx, sportID, month, year)
	default:
		if _, perr := time.Parse("2006-01-02", date); perr != nil {
			return []models.Slot{}, NewValidationError("date must be in YYYY-MM-DD format")
		}
		records, err = s.SlotRepo.GetBySportAndDate(ctx, sportID, date)
	}
	if err != nil {
		s.Logger.Error("failed to load slots", zap.String("sportsId", sportID), zap.Error(err))
		return []models.Slot{}, NewGatewayError("failed to load available slots")
	}

	slots := make([]models.Slot, 0, len(records))
	for _, rec := range records {
		slots = append(slots, NormalizeSlot(rec, sport))
	}
	return slots, nil
}

// NormalizeSlot resolves the inconsistently shaped storage record into a
// uniform Slot. Price precedence: explicit total price, then the record's
// own price, then the sport's configured tier for the slot type, then zero.
// Sport name precedence: flat record name, nested sport document, catalog.
func NormalizeSlot(rec models.SlotRecord, sport *models.Sport) models.Slot {
	price := rec.TotalPrice
	if price == 0 {
		price = rec.Price
	}
	if price == 0 && sport != nil {
		if rec.SlotType == models.SlotTypeMonth {
			price = sport.MonthPrice
		} else {
			price = sport.DayPrice
		}
	}

	name := rec.SportName
	if name == "" && rec.Sport != nil {
		name = rec.Sport.Name
	}
	if name == "" && sport != nil {
		name = sport.Name
	}

	status := rec.Status
	switch status {
	case "", models.SlotStatusAvailable:
		status = models.SlotStatusAvailable
	default:
		// BOOKED, UNAVAILABLE and anything unrecognized all mean "not bookable".
		status = models.SlotStatusBooked
	}

	slot := models.Slot{
		ID:        rec.ID,
		SportID:   rec.SportID,
		SportName: name,
		SlotType:  rec.SlotType,
		Date:      rec.Date,
		Month:     rec.Month,
		Year:      rec.Year,
		StartTime: rec.StartTime,
		EndTime:   rec.EndTime,
		Status:    status,
		Price:     price,
	}
	if slot.SlotType == "" {
		slot.SlotType = models.SlotTypeDay
	}
	if slot.ID == "" {
		slot.ID = SynthesizeSlotID(slot.SportID, slot.DateKey(), slot.StartTime, slot.EndTime)
	}
	return slot
}

// SynthesizeSlotID builds a deterministic identifier so repeated fetches of
// the same data produce stable keys.
func SynthesizeSlotID(sportID, dateKey, start, end string) string {
	return fmt.Sprintf("%s:%s:%s-%s", sportID, dateKey, start, end)
}
