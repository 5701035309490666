package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "courtside/database/repository/booking"
	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *testFixture) sessionReadyForPayment(t *testing.T) *models.BookingSession {
	t.Helper()
	session := f.startDaySession(t)
	session.Selected = models.SelectedSlotSet{daySlot("18:00", "19:00")}
	session.Summary = buildSummary(testSport(), session)
	require.NoError(t, f.store.Save(context.Background(), session))
	return session
}

func completedCopy(attempt *models.PaymentAttempt, status string) *models.PaymentAttempt {
	out := *attempt
	out.Status = status
	return &out
}

func TestCreateAttemptCODCompletesWithoutGateway(t *testing.T) {
	f := newTestFixture()
	session := f.sessionReadyForPayment(t)

	var persisted *models.PaymentAttempt
	f.slots.On("Reserve", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	f.bookings.On("CreateAttempt", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(1).(*models.PaymentAttempt)
	}).Return(nil)
	f.bookings.On("TransitionStatus", mock.Anything, mock.Anything,
		[]string{models.PaymentStatusCODPending}, models.PaymentStatusCompleted).
		Return(&models.PaymentAttempt{Status: models.PaymentStatusCompleted}, nil)

	resp, err := f.svc.CreateAttempt(context.Background(), session.SessionID, "user-1",
		models.RoleAdmin, models.PaymentMethodCOD, models.Customer{Name: "Asha", Phone: "9999999999"})
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, models.PaymentStatusCODPending, persisted.Status)
	assert.Equal(t, models.PaymentMethodCOD, persisted.Method)
	// 1500 slot + 300 floodlighting, in minor units.
	assert.Equal(t, int64(180000), resp.Amount)
	assert.Empty(t, resp.RazorpayOrderID)

	f.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, f.store.deleted, session.SessionID)
}

func TestCreateAttemptCODBlockedForBaseRole(t *testing.T) {
	f := newTestFixture()
	session := f.sessionReadyForPayment(t)

	_, err := f.svc.CreateAttempt(context.Background(), session.SessionID, "user-1",
		models.RoleUser, models.PaymentMethodCOD, models.Customer{Name: "Asha", Phone: "9999999999"})
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeValidation, berr.Code)
	f.slots.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateAttemptOnlineOpensGatewayOrder(t *testing.T) {
	f := newTestFixture()
	session := f.sessionReadyForPayment(t)

	f.slots.On("Reserve", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	f.gateway.On("CreateOrder", mock.Anything, int64(180000), "INR", mock.Anything).Return("order_rzp1", nil)
	f.gateway.On("KeyID").Return("rzp_test_key")
	f.bookings.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)
	f.tasks.On("EnqueueReconcile", mock.Anything, 30*time.Minute).Return(nil)

	resp, err := f.svc.CreateAttempt(context.Background(), session.SessionID, "user-1",
		models.RoleUser, models.PaymentMethodOnline, models.Customer{Name: "Asha", Phone: "9999999999"})
	require.NoError(t, err)

	assert.Equal(t, "order_rzp1", resp.RazorpayOrderID)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	assert.NotEmpty(t, resp.PaymentID)
	assert.NotEmpty(t, resp.OrderID)

	// The session stays alive with the attempt pinned until verification.
	reloaded, err := f.store.Get(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, resp.PaymentID, reloaded.ActivePaymentID)
	f.tasks.AssertCalled(t, "EnqueueReconcile", resp.PaymentID, 30*time.Minute)
}

func TestCreateAttemptReservationConflict(t *testing.T) {
	f := newTestFixture()
	session := f.sessionReadyForPayment(t)

	var reservedUnder, releasedUnder string
	f.slots.On("Reserve", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		reservedUnder = args.String(2)
	}).Return(int64(0), nil)
	f.slots.On("Release", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		releasedUnder = args.String(2)
	}).Return(nil)

	_, err := f.svc.CreateAttempt(context.Background(), session.SessionID, "user-1",
		models.RoleUser, models.PaymentMethodOnline, models.Customer{Name: "Asha", Phone: "9999999999"})
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeConflict, berr.Code)

	// Cleanup only touches this attempt's own reservation tag, so a slot
	// another attempt holds is never freed by a losing contender.
	require.NotEmpty(t, reservedUnder)
	assert.Equal(t, reservedUnder, releasedUnder)
	f.bookings.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestCreateAttemptGatewayFailureReleasesSlots(t *testing.T) {
	f := newTestFixture()
	session := f.sessionReadyForPayment(t)

	f.slots.On("Reserve", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	f.slots.On("Release", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("gateway down"))

	_, err := f.svc.CreateAttempt(context.Background(), session.SessionID, "user-1",
		models.RoleUser, models.PaymentMethodOnline, models.Customer{Name: "Asha", Phone: "9999999999"})
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeGateway, berr.Code)

	f.slots.AssertCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	f.bookings.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}

func TestCreateAttemptRejectsStaleSummary(t *testing.T) {
	f := newTestFixture()
	session := f.startDaySession(t)
	session.Selected = models.SelectedSlotSet{daySlot("18:00", "19:00")}
	// Summary deliberately absent: the selection changed after pricing.
	require.NoError(t, f.store.Save(context.Background(), session))

	_, err := f.svc.CreateAttempt(context.Background(), session.SessionID, "user-1",
		models.RoleUser, models.PaymentMethodOnline, models.Customer{Name: "Asha", Phone: "9999999999"})
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeState, berr.Code)
}

func pendingAttempt() *models.PaymentAttempt {
	return &models.PaymentAttempt{
		PaymentID:      "pay-1",
		OrderID:        "ord-1",
		GatewayOrderID: "order_rzp1",
		UserID:         "user-1",
		SessionID:      "sess-1",
		Method:         models.PaymentMethodOnline,
		Status:         models.PaymentStatusOnlinePending,
		Amount:         1800,
		Currency:       "INR",
		Slots:          []models.Slot{daySlot("18:00", "19:00")},
	}
}

func verifyReq() models.VerifyPaymentRequest {
	return models.VerifyPaymentRequest{
		PaymentID:         "pay-1",
		OrderID:           "ord-1",
		RazorpayOrderID:   "order_rzp1",
		RazorpayPaymentID: "pay_rzp1",
		RazorpaySignature: "sig",
	}
}

func TestVerifyPaymentCommitsOnValidSignature(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		[]string{models.PaymentStatusOnlinePending}, models.PaymentStatusVerifying).
		Return(completedCopy(attempt, models.PaymentStatusVerifying), nil)
	f.gateway.On("VerifySignature", "order_rzp1", "pay_rzp1", "sig").Return(true)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		[]string{models.PaymentStatusVerifying}, models.PaymentStatusCompleted).
		Return(completedCopy(attempt, models.PaymentStatusCompleted), nil)

	result, err := f.svc.VerifyPayment(context.Background(), verifyReq())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.Status)
	assert.Contains(t, f.store.deleted, "sess-1")
}

func TestVerifyPaymentBadSignatureCancelsOnce(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		[]string{models.PaymentStatusOnlinePending}, models.PaymentStatusVerifying).
		Return(completedCopy(attempt, models.PaymentStatusVerifying), nil)
	f.gateway.On("VerifySignature", "order_rzp1", "pay_rzp1", "sig").Return(false)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		nonTerminalStates, models.PaymentStatusCancelled).
		Return(completedCopy(attempt, models.PaymentStatusCancelled), nil).Once()
	f.slots.On("Release", mock.Anything, mock.Anything, "pay-1").Return(nil)

	result, err := f.svc.VerifyPayment(context.Background(), verifyReq())
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeGateway, berr.Code)
	require.NotNil(t, result)
	assert.Equal(t, models.PaymentStatusCancelled, result.Status)

	f.slots.AssertNumberOfCalls(t, "Release", 1)
	f.bookings.AssertExpectations(t)
}

func TestVerifyPaymentMismatchedOrderCancels(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		[]string{models.PaymentStatusOnlinePending}, models.PaymentStatusVerifying).
		Return(completedCopy(attempt, models.PaymentStatusVerifying), nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		nonTerminalStates, models.PaymentStatusCancelled).
		Return(completedCopy(attempt, models.PaymentStatusCancelled), nil)
	f.slots.On("Release", mock.Anything, mock.Anything, "pay-1").Return(nil)

	req := verifyReq()
	req.RazorpayOrderID = "order_someone_elses"
	_, err := f.svc.VerifyPayment(context.Background(), req)
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeGateway, berr.Code)
	// The signature is never consulted for a foreign order id.
	f.gateway.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentIdempotentWhenCompleted(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()
	attempt.Status = models.PaymentStatusCompleted

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)

	result, err := f.svc.VerifyPayment(context.Background(), verifyReq())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, result.Status)
	f.bookings.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentRejectsWrongState(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()
	attempt.Status = models.PaymentStatusCancelled

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		[]string{models.PaymentStatusOnlinePending}, models.PaymentStatusVerifying).
		Return(nil, bookingRepo.ErrStateConflict)

	_, err := f.svc.VerifyPayment(context.Background(), verifyReq())
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeState, berr.Code)
}

func TestCancelAttemptReleasesSlots(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		nonTerminalStates, models.PaymentStatusCancelled).
		Return(completedCopy(attempt, models.PaymentStatusCancelled), nil)
	f.slots.On("Release", mock.Anything, attempt.Slots, "pay-1").Return(nil)

	result, err := f.svc.CancelAttempt(context.Background(), "pay-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCancelled, result.Status)
	f.slots.AssertNumberOfCalls(t, "Release", 1)
}

func TestCancelAttemptHidesForeignAttempts(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)

	// Another authenticated user guessing the payment id learns nothing
	// and changes nothing.
	_, err := f.svc.CancelAttempt(context.Background(), "pay-1", "user-2")
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeNotFound, berr.Code)
	f.bookings.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.slots.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelAttemptSystemCallerBypassesOwnership(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		nonTerminalStates, models.PaymentStatusCancelled).
		Return(completedCopy(attempt, models.PaymentStatusCancelled), nil)
	f.slots.On("Release", mock.Anything, attempt.Slots, "pay-1").Return(nil)

	// The reconcile worker carries no user id.
	result, err := f.svc.CancelAttempt(context.Background(), "pay-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCancelled, result.Status)
}

func TestCancelAttemptIdempotent(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()
	attempt.Status = models.PaymentStatusCancelled

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)

	result, err := f.svc.CancelAttempt(context.Background(), "pay-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCancelled, result.Status)
	f.bookings.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.slots.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelAttemptRefusesCompleted(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()
	attempt.Status = models.PaymentStatusCompleted

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)

	_, err := f.svc.CancelAttempt(context.Background(), "pay-1", "user-1")
	var berr *BookingError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, CodeState, berr.Code)
}

func TestFailAttemptMarksFailedAndReleases(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)
	f.bookings.On("TransitionStatus", mock.Anything, "pay-1",
		nonTerminalStates, models.PaymentStatusFailed).
		Return(completedCopy(attempt, models.PaymentStatusFailed), nil)
	f.slots.On("Release", mock.Anything, attempt.Slots, "pay-1").Return(nil)

	result, err := f.svc.FailAttempt(context.Background(), "pay-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, result.Status)
	f.slots.AssertNumberOfCalls(t, "Release", 1)
	assert.Contains(t, f.store.deleted, "sess-1")
}

func TestFailAttemptIdempotent(t *testing.T) {
	f := newTestFixture()
	attempt := pendingAttempt()
	attempt.Status = models.PaymentStatusFailed

	f.bookings.On("GetAttemptByPaymentID", mock.Anything, "pay-1").Return(attempt, nil)

	result, err := f.svc.FailAttempt(context.Background(), "pay-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, result.Status)
	f.bookings.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.slots.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestMinorUnitsRounding(t *testing.T) {
	assert.Equal(t, int64(150000), minorUnits(1500))
	assert.Equal(t, int64(129999), minorUnits(1299.99))
	assert.Equal(t, int64(10), minorUnits(0.1))
}
