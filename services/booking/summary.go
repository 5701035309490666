package booking

import (
	"context"

	"courtside/models"
	"courtside/utils"
)

// BuildSummary computes the priced summary for the session's current
// selection and stores it on the session. The summary is discarded whenever
// the selection or player count changes, so payment always runs against a
// summary computed from exactly the slots being bought.
func (s *DefaultBookingService) BuildSummary(ctx context.Context, sessionID, userID string) (*models.BookingSummary, error) {
	session, err := s.loadOwnedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if len(session.Selected) == 0 {
		return nil, NewValidationError("select at least one slot before requesting a summary")
	}
	sport, err := s.SportRepo.GetByID(ctx, session.SportID)
	if err != nil {
		return nil, NewNotFoundError("sport not found")
	}

	summary := buildSummary(sport, session)
	session.Summary = summary
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return summary, nil
}

// buildSummary prices the selection in insertion order. Missing values fall
// back defensively: zero total, the session's player count, "INR".
func buildSummary(sport *models.Sport, session *models.BookingSession) *models.BookingSummary {
	summary := &models.BookingSummary{
		SportName:   session.SportName,
		Ground:      session.Ground,
		NoOfPlayers: session.NoOfPlayers,
		Slots:       make([]models.SummarySlot, 0, len(session.Selected)),
		Currency:    "INR",
	}
	if sport != nil {
		if sport.Name != "" {
			summary.SportName = sport.Name
		}
		if sport.Ground != "" {
			summary.Ground = sport.Ground
		}
		if sport.Currency != "" {
			summary.Currency = sport.Currency
		}
	}
	if summary.NoOfPlayers <= 0 {
		summary.NoOfPlayers = 1
	}

	var total float64
	for _, slot := range session.Selected {
		amount := slotAmount(slot, sport)
		line := models.SummarySlot{
			Date:      slot.Date,
			Month:     slot.Month,
			Year:      slot.Year,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Label:     utils.FormatRange(slot.StartTime, slot.EndTime),
			Amount:    amount,
		}
		summary.Slots = append(summary.Slots, line)
		summary.Breakdown = append(summary.Breakdown, models.BreakdownLine{
			Description: summary.SportName + " " + line.Label,
			Amount:      amount,
		})
		total += amount

		if surcharge := lightingSurcharge(slot, sport); surcharge > 0 {
			summary.Breakdown = append(summary.Breakdown, models.BreakdownLine{
				Description: "Floodlighting " + line.Label,
				Amount:      surcharge,
			})
			total += surcharge
		}
	}
	summary.TotalAmount = total
	return summary
}
