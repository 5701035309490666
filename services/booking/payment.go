package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	bookingRepo "courtside/database/repository/booking"
	"courtside/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stale online attempts are reconciled (cancelled, slots released) after
// this long without reaching a terminal state.
const reconcileAfter = 30 * time.Minute

var nonTerminalStates = []string{
	models.PaymentStatusCreated,
	models.PaymentStatusOnlinePending,
	models.PaymentStatusCODPending,
	models.PaymentStatusVerifying,
}

// CreateAttempt turns the session's confirmed summary into a persisted
// payment attempt. It reserves the selected slots, and for online payment
// opens a gateway order before returning, so checkout never starts without a
// server-issued order reference. Pay-on-arrival attempts complete
// immediately with no gateway round-trip.
func (s *DefaultBookingService) CreateAttempt(ctx context.Context, sessionID, userID, role, method string, customer models.Customer) (*models.PaymentOrderResponse, error) {
	if customer.Name == "" || customer.Phone == "" {
		return nil, NewValidationError("customer name and phone are required")
	}
	switch method {
	case models.PaymentMethodOnline:
	case models.PaymentMethodCOD:
		if role == models.RoleUser {
			return nil, NewValidationError("pay on arrival is not available for this account")
		}
	default:
		return nil, NewValidationError("payment_method must be online or cod")
	}

	session, err := s.loadOwnedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.ActivePaymentID != "" {
		if active, aerr := s.BookingRepo.GetAttemptByPaymentID(ctx, session.ActivePaymentID); aerr == nil && !active.Terminal() {
			return nil, NewStateError("a payment attempt is already in progress")
		}
	}
	if len(session.Selected) == 0 {
		return nil, NewValidationError("no slots selected")
	}
	if session.Summary == nil {
		return nil, NewStateError("booking summary is stale; request a fresh summary")
	}
	if session.SportID == "" {
		// A session without a sport id cannot have passed StartSession.
		return nil, fmt.Errorf("booking session %s has no sport id", sessionID)
	}

	attempt := &models.PaymentAttempt{
		PaymentID:   uuid.New().String(),
		OrderID:     uuid.New().String(),
		UserID:      userID,
		SessionID:   sessionID,
		SportID:     session.SportID,
		Method:      method,
		Status:      models.PaymentStatusCreated,
		Amount:      session.Summary.TotalAmount,
		Currency:    session.Summary.Currency,
		NoOfPlayers: session.Summary.NoOfPlayers,
		Customer:    customer,
		Slots:       session.Selected,
	}
	if attempt.Currency == "" {
		attempt.Currency = "INR"
	}

	reserved, err := s.SlotRepo.Reserve(ctx, attempt.Slots, attempt.PaymentID)
	if err != nil || reserved != int64(len(attempt.Slots)) {
		if rerr := s.SlotRepo.Release(ctx, attempt.Slots, attempt.PaymentID); rerr != nil {
			s.Logger.Error("failed to release partially reserved slots", zap.Error(rerr))
		}
		if err != nil {
			s.Logger.Error("slot reservation failed", zap.Error(err))
			return nil, NewGatewayError("failed to reserve slots")
		}
		return nil, NewConflictError("one or more selected slots are no longer available")
	}

	resp := &models.PaymentOrderResponse{
		PaymentID: attempt.PaymentID,
		OrderID:   attempt.OrderID,
		Amount:    minorUnits(attempt.Amount),
		Currency:  attempt.Currency,
	}

	if method == models.PaymentMethodOnline {
		gatewayOrderID, gerr := s.Gateway.CreateOrder(ctx, resp.Amount, attempt.Currency, attempt.OrderID)
		if gerr != nil {
			// No payment or order was opened; releasing the slots is the
			// only cleanup needed.
			if rerr := s.SlotRepo.Release(ctx, attempt.Slots, attempt.PaymentID); rerr != nil {
				s.Logger.Error("failed to release slots after gateway error", zap.Error(rerr))
			}
			s.Logger.Error("gateway order creation failed", zap.Error(gerr))
			return nil, NewGatewayError("failed to initiate online payment")
		}
		attempt.GatewayOrderID = gatewayOrderID
		attempt.KeyID = s.Gateway.KeyID()
		attempt.Status = models.PaymentStatusOnlinePending
		resp.KeyID = attempt.KeyID
		resp.RazorpayOrderID = gatewayOrderID
	} else {
		attempt.Status = models.PaymentStatusCODPending
	}

	if err := s.BookingRepo.CreateAttempt(ctx, attempt); err != nil {
		if rerr := s.SlotRepo.Release(ctx, attempt.Slots, attempt.PaymentID); rerr != nil {
			s.Logger.Error("failed to release slots after persist error", zap.Error(rerr))
		}
		return nil, fmt.Errorf("failed to persist payment attempt: %w", err)
	}

	if method == models.PaymentMethodCOD {
		// No gateway round-trip: the booking is recorded as payable on
		// arrival and the attempt completes immediately.
		if _, terr := s.BookingRepo.TransitionStatus(ctx, attempt.PaymentID,
			[]string{models.PaymentStatusCODPending}, models.PaymentStatusCompleted); terr != nil {
			return nil, fmt.Errorf("failed to complete pay-on-arrival attempt: %w", terr)
		}
		if derr := s.Sessions.Delete(ctx, sessionID); derr != nil {
			s.Logger.Warn("failed to clear session after booking", zap.Error(derr))
		}
		s.Logger.Info("pay-on-arrival booking completed",
			zap.String("paymentId", attempt.PaymentID), zap.Float64("amount", attempt.Amount))
		return resp, nil
	}

	session.ActivePaymentID = attempt.PaymentID
	if serr := s.Sessions.Save(ctx, session); serr != nil {
		s.Logger.Warn("failed to record active payment on session", zap.Error(serr))
	}
	if s.Tasks != nil {
		if terr := s.Tasks.EnqueueReconcile(attempt.PaymentID, reconcileAfter); terr != nil {
			s.Logger.Warn("failed to schedule payment reconciliation", zap.Error(terr))
		}
	}
	s.Logger.Info("online payment attempt opened",
		zap.String("paymentId", attempt.PaymentID), zap.String("gatewayOrderId", attempt.GatewayOrderID))
	return resp, nil
}

// VerifyPayment handles the gateway success callback: it checks the signed
// payload server-side and commits or compensates. Verification failure is
// terminal for the attempt: the slots are released and the attempt is
// cancelled, never retried.
func (s *DefaultBookingService) VerifyPayment(ctx context.Context, req models.VerifyPaymentRequest) (*models.PaymentAttempt, error) {
	attempt, err := s.BookingRepo.GetAttemptByPaymentID(ctx, req.PaymentID)
	if err != nil {
		return nil, NewNotFoundError("payment attempt not found")
	}
	// A duplicate verify for an already committed payment is a no-op.
	if attempt.Status == models.PaymentStatusCompleted {
		return attempt, nil
	}

	attempt, err = s.BookingRepo.TransitionStatus(ctx, req.PaymentID,
		[]string{models.PaymentStatusOnlinePending}, models.PaymentStatusVerifying)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStateConflict) {
			return nil, NewStateError("payment is not awaiting verification")
		}
		return nil, err
	}

	if req.RazorpayOrderID != attempt.GatewayOrderID ||
		!s.Gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		s.Logger.Warn("payment verification failed",
			zap.String("paymentId", attempt.PaymentID), zap.String("gatewayOrderId", req.RazorpayOrderID))
		cancelled := s.compensate(ctx, attempt, models.PaymentStatusCancelled)
		return cancelled, NewGatewayError("payment verification failed")
	}

	attempt, err = s.BookingRepo.TransitionStatus(ctx, req.PaymentID,
		[]string{models.PaymentStatusVerifying}, models.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}
	if derr := s.Sessions.Delete(ctx, attempt.SessionID); derr != nil {
		s.Logger.Warn("failed to clear session after payment", zap.Error(derr))
	}
	s.Logger.Info("payment verified",
		zap.String("paymentId", attempt.PaymentID), zap.Float64("amount", attempt.Amount))
	return attempt, nil
}

// CancelAttempt is the compensating cancellation: it is invoked when the
// user dismisses checkout or by the reconciliation worker. An empty userID
// is the system caller; anyone else must own the attempt. Cancelling an
// already cancelled attempt is a no-op.
func (s *DefaultBookingService) CancelAttempt(ctx context.Context, paymentID, userID string) (*models.PaymentAttempt, error) {
	return s.finalize(ctx, paymentID, userID, models.PaymentStatusCancelled)
}

// FailAttempt records a gateway-reported payment failure. Same compensation
// as cancellation, with the attempt ending FAILED.
func (s *DefaultBookingService) FailAttempt(ctx context.Context, paymentID, userID string) (*models.PaymentAttempt, error) {
	return s.finalize(ctx, paymentID, userID, models.PaymentStatusFailed)
}

func (s *DefaultBookingService) finalize(ctx context.Context, paymentID, userID, to string) (*models.PaymentAttempt, error) {
	attempt, err := s.BookingRepo.GetAttemptByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, NewNotFoundError("payment attempt not found")
	}
	// Attempts are invisible to everyone but their owner.
	if userID != "" && attempt.UserID != userID {
		return nil, NewNotFoundError("payment attempt not found")
	}
	if attempt.Status == models.PaymentStatusCompleted {
		return nil, NewStateError("payment already completed")
	}
	if attempt.Terminal() {
		return attempt, nil
	}
	return s.compensate(ctx, attempt, to), nil
}

// compensate moves the attempt to the terminal state and releases its
// reserved slots. Slot release and session cleanup are best-effort: the
// attempt record is the source of truth and the worker re-runs release on
// stale attempts.
func (s *DefaultBookingService) compensate(ctx context.Context, attempt *models.PaymentAttempt, to string) *models.PaymentAttempt {
	updated, err := s.BookingRepo.TransitionStatus(ctx, attempt.PaymentID, nonTerminalStates, to)
	if err != nil {
		if current, gerr := s.BookingRepo.GetAttemptByPaymentID(ctx, attempt.PaymentID); gerr == nil {
			return current
		}
		s.Logger.Error("failed to finalize attempt", zap.String("paymentId", attempt.PaymentID), zap.Error(err))
		return attempt
	}
	if rerr := s.SlotRepo.Release(ctx, updated.Slots, updated.PaymentID); rerr != nil {
		s.Logger.Error("failed to release slots on compensation",
			zap.String("paymentId", updated.PaymentID), zap.Error(rerr))
	}
	if derr := s.Sessions.Delete(ctx, updated.SessionID); derr != nil {
		s.Logger.Warn("failed to clear session on compensation", zap.Error(derr))
	}
	s.Logger.Info("payment attempt closed",
		zap.String("paymentId", updated.PaymentID), zap.String("status", updated.Status))
	return updated
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
