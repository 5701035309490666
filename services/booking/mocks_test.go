package booking

import (
	"context"
	"encoding/json"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/mock"
)

type mockSlotRepo struct{ mock.Mock }

func (m *mockSlotRepo) CreateMany(ctx context.Context, records []models.SlotRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *mockSlotRepo) GetBySportAndDate(ctx context.Context, sportID, date string) ([]models.SlotRecord, error) {
	args := m.Called(ctx, sportID, date)
	if recs, ok := args.Get(0).([]models.SlotRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSlotRepo) GetBySportAndMonth(ctx context.Context, sportID, month, year string) ([]models.SlotRecord, error) {
	args := m.Called(ctx, sportID, month, year)
	if recs, ok := args.Get(0).([]models.SlotRecord); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSlotRepo) Reserve(ctx context.Context, slots []models.Slot, paymentID string) (int64, error) {
	args := m.Called(ctx, slots, paymentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSlotRepo) Release(ctx context.Context, slots []models.Slot, paymentID string) error {
	args := m.Called(ctx, slots, paymentID)
	return args.Error(0)
}

func (m *mockSlotRepo) DeleteBySport(ctx context.Context, sportID string) error {
	args := m.Called(ctx, sportID)
	return args.Error(0)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) CreateAttempt(ctx context.Context, attempt *models.PaymentAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *mockBookingRepo) GetAttemptByPaymentID(ctx context.Context, paymentID string) (*models.PaymentAttempt, error) {
	args := m.Called(ctx, paymentID)
	if attempt, ok := args.Get(0).(*models.PaymentAttempt); ok {
		return attempt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) TransitionStatus(ctx context.Context, paymentID string, from []string, to string) (*models.PaymentAttempt, error) {
	args := m.Called(ctx, paymentID, from, to)
	if attempt, ok := args.Get(0).(*models.PaymentAttempt); ok {
		return attempt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListPendingOlderThan(ctx context.Context, age time.Duration) ([]models.PaymentAttempt, error) {
	args := m.Called(ctx, age)
	if attempts, ok := args.Get(0).([]models.PaymentAttempt); ok {
		return attempts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.PaymentAttempt, error) {
	args := m.Called(ctx, userID)
	if attempts, ok := args.Get(0).([]models.PaymentAttempt); ok {
		return attempts, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSportRepo struct{ mock.Mock }

func (m *mockSportRepo) Create(ctx context.Context, sport *models.Sport) error {
	args := m.Called(ctx, sport)
	return args.Error(0)
}

func (m *mockSportRepo) GetByID(ctx context.Context, id string) (*models.Sport, error) {
	args := m.Called(ctx, id)
	if sport, ok := args.Get(0).(*models.Sport); ok {
		return sport, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSportRepo) List(ctx context.Context, activeOnly bool) ([]models.Sport, error) {
	args := m.Called(ctx, activeOnly)
	if sports, ok := args.Get(0).([]models.Sport); ok {
		return sports, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSportRepo) Update(ctx context.Context, sport *models.Sport) error {
	args := m.Called(ctx, sport)
	return args.Error(0)
}

func (m *mockSportRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	args := m.Called(ctx, amountMinor, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

func (m *mockGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}

type mockEnqueuer struct{ mock.Mock }

func (m *mockEnqueuer) EnqueueReconcile(paymentID string, delay time.Duration) error {
	args := m.Called(paymentID, delay)
	return args.Error(0)
}

// memSessionStore is an in-memory SessionStore. Sessions round-trip through
// JSON on both reads and writes, matching the Redis store's copy semantics.
type memSessionStore struct {
	sessions map[string]string
	deleted  []string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]string{}}
}

func (st *memSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, ok := st.sessions[sessionID]
	if !ok {
		return nil, NewNotFoundError("booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (st *memSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	st.sessions[session.SessionID] = string(data)
	return nil
}

func (st *memSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(st.sessions, sessionID)
	st.deleted = append(st.deleted, sessionID)
	return nil
}
