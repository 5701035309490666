package booking

import (
	"context"
	"time"

	bookingRepo "courtside/database/repository/booking"
	slotRepo "courtside/database/repository/slot"
	sportRepo "courtside/database/repository/sport"
	"courtside/models"

	"go.uber.org/zap"
)

// StartSessionRequest opens a booking session for a sport and a day or month.
type StartSessionRequest struct {
	SportID     string `json:"sports_id" binding:"required"`
	SlotType    string `json:"slot_type"`
	Date        string `json:"date,omitempty"`
	Month       string `json:"type_month,omitempty"`
	Year        string `json:"type_year,omitempty"`
	NoOfPlayers int    `json:"no_of_players"`
}

// BookingService drives the slot-booking workflow: availability, the
// per-session slot selection, priced summaries, and the payment state
// machine with compensating cancellation.
type BookingService interface {
	FetchAvailableSlots(ctx context.Context, sportID, slotType, date, month, year string) ([]models.Slot, error)

	StartSession(ctx context.Context, userID string, req StartSessionRequest) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID, userID string) (*models.BookingSession, error)
	ToggleSlot(ctx context.Context, sessionID, userID string, slot models.Slot) (*models.BookingSession, error)
	SetPlayers(ctx context.Context, sessionID, userID string, players int) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID, userID string) error

	BuildSummary(ctx context.Context, sessionID, userID string) (*models.BookingSummary, error)

	CreateAttempt(ctx context.Context, sessionID, userID, role, method string, customer models.Customer) (*models.PaymentOrderResponse, error)
	VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) (*models.PaymentAttempt, error)
	CancelAttempt(ctx context.Context, paymentID, userID string) (*models.PaymentAttempt, error)
	FailAttempt(ctx context.Context, paymentID, userID string) (*models.PaymentAttempt, error)
	ListUserAttempts(ctx context.Context, userID string) ([]models.PaymentAttempt, error)
}

// TaskEnqueuer schedules background reconciliation of payment attempts.
type TaskEnqueuer interface {
	EnqueueReconcile(paymentID string, delay time.Duration) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	SlotRepo    slotRepo.SlotRepository
	BookingRepo bookingRepo.BookingRepository
	SportRepo   sportRepo.SportRepository
	Sessions    SessionStore
	Gateway     PaymentGateway
	Tasks       TaskEnqueuer
	Logger      *zap.Logger

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func (s *DefaultBookingService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
