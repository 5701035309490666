package booking

import (
	"context"

	"courtside/models"
)

// ListUserAttempts returns the caller's payment attempts, newest first.
func (s *DefaultBookingService) ListUserAttempts(ctx context.Context, userID string) ([]models.PaymentAttempt, error) {
	return s.BookingRepo.ListByUser(ctx, userID)
}
