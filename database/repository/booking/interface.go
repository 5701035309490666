package bookingRepo

import (
	"context"
	"time"

	"courtside/models"
)

// BookingRepository persists payment attempts and their state transitions.
type BookingRepository interface {
	CreateAttempt(ctx context.Context, attempt *models.PaymentAttempt) error
	GetAttemptByPaymentID(ctx context.Context, paymentID string) (*models.PaymentAttempt, error)
	// TransitionStatus moves an attempt from one of the given states to the
	// target state atomically and returns the updated record. It returns
	// ErrStateConflict when the attempt is not in any of the from states.
	TransitionStatus(ctx context.Context, paymentID string, from []string, to string) (*models.PaymentAttempt, error)
	ListPendingOlderThan(ctx context.Context, age time.Duration) ([]models.PaymentAttempt, error)
	ListByUser(ctx context.Context, userID string) ([]models.PaymentAttempt, error)
}
