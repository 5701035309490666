package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

// SessionStore persists booking sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Save(ctx context.Context, session *models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns a SessionStore backed by Redis with a 30
// minute TTL refreshed on every save.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (st *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := st.client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, NewNotFoundError("booking session not found or expired")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (st *redisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	return st.client.Set(ctx, session.SessionID, data, sessionTTL).Err()
}

func (st *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return st.client.Del(ctx, sessionID).Err()
}

// StartSession opens a fresh booking session for a sport and a day or month.
// Any previous selection is abandoned by starting over; the candidate set is
// fetched separately and never stored on the session.
func (s *DefaultBookingService) StartSession(ctx context.Context, userID string, req StartSessionRequest) (*models.BookingSession, error) {
	sport, err := s.SportRepo.GetByID(ctx, req.SportID)
	if err != nil {
		return nil, NewNotFoundError("sport not found")
	}

	slotType := req.SlotType
	if slotType == "" {
		slotType = models.SlotTypeDay
	}
	switch slotType {
	case models.SlotTypeDay:
		if _, perr := time.Parse("2006-01-02", req.Date); perr != nil {
			return nil, NewValidationError("date must be in YYYY-MM-DD format")
		}
	case models.SlotTypeMonth:
		if !utils.ValidMonthAbbrev(req.Month) {
			return nil, NewValidationError("type_month must be a 3-letter month abbreviation (JAN..DEC)")
		}
		if len(req.Year) != 4 {
			return nil, NewValidationError("type_year must be a 4-digit year")
		}
	default:
		return nil, NewValidationError("slot_type must be DAY or MONTH")
	}

	players := req.NoOfPlayers
	if players <= 0 {
		players = 1
	}

	session := &models.BookingSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		SportID:     sport.ID,
		SportName:   sport.Name,
		Ground:      sport.Ground,
		SlotType:    slotType,
		Date:        req.Date,
		Month:       req.Month,
		Year:        req.Year,
		NoOfPlayers: players,
		Selected:    models.SelectedSlotSet{},
	}
	if slotType == models.SlotTypeMonth {
		session.Date = ""
	} else {
		session.Month = ""
		session.Year = ""
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the caller's session.
func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID, userID string) (*models.BookingSession, error) {
	return s.loadOwnedSession(ctx, sessionID, userID)
}

// ToggleSlot adds the slot to the selection, or removes it if a slot with
// the same (start, end, date) identity is already selected. The caller only
// names the slot; price and status come from the stored record, so a
// tampered payload can neither discount a slot nor select a booked one.
// Non-available slots and already-elapsed slots on the current day are
// silently ignored. Any held summary is invalidated.
func (s *DefaultBookingService) ToggleSlot(ctx context.Context, sessionID, userID string, slot models.Slot) (*models.BookingSession, error) {
	session, err := s.loadOwnedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.ActivePaymentID != "" {
		if active, aerr := s.BookingRepo.GetAttemptByPaymentID(ctx, session.ActivePaymentID); aerr == nil && !active.Terminal() {
			return nil, NewStateError("a payment attempt is in progress; the selection is locked")
		}
	}
	if err := validateSlotForSession(session, slot); err != nil {
		return nil, err
	}

	// The session fixes the mode; the payload need not repeat it.
	slot.SlotType = session.SlotType

	if session.Selected.Contains(slot) {
		session.Selected = session.Selected.Toggle(slot)
	} else {
		resolved, rerr := s.resolveSlot(ctx, session, slot)
		if rerr != nil {
			return nil, rerr
		}
		if !toggleAllowed(resolved, s.clock()) {
			s.Logger.Debug("toggle ignored for unavailable or past slot",
				zap.String("sessionId", sessionID), zap.String("slot", resolved.Key()))
			return session, nil
		}
		session.Selected = session.Selected.Toggle(resolved)
	}
	session.Summary = nil
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// resolveSlot looks the named slot up by its structural identity among the
// stored records for the session's window and returns the server's
// normalized version of it.
func (s *DefaultBookingService) resolveSlot(ctx context.Context, session *models.BookingSession, slot models.Slot) (models.Slot, error) {
	sport, err := s.SportRepo.GetByID(ctx, session.SportID)
	if err != nil {
		return models.Slot{}, NewNotFoundError("sport not found")
	}

	var records []models.SlotRecord
	if session.SlotType == models.SlotTypeMonth {
		records, err = s.SlotRepo.GetBySportAndMonth(ctx, session.SportID, session.Month, session.Year)
	} else {
		records, err = s.SlotRepo.GetBySportAndDate(ctx, session.SportID, session.Date)
	}
	if err != nil {
		s.Logger.Error("failed to load slots for toggle", zap.String("sportsId", session.SportID), zap.Error(err))
		return models.Slot{}, NewGatewayError("failed to load available slots")
	}

	for _, rec := range records {
		resolved := NormalizeSlot(rec, sport)
		if resolved.Key() == slot.Key() {
			return resolved, nil
		}
	}
	return models.Slot{}, NewNotFoundError("no such slot in the session's window")
}

// SetPlayers updates the player count and invalidates any held summary.
func (s *DefaultBookingService) SetPlayers(ctx context.Context, sessionID, userID string, players int) (*models.BookingSession, error) {
	if players <= 0 {
		return nil, NewValidationError("no_of_players must be at least 1")
	}
	session, err := s.loadOwnedSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	session.NoOfPlayers = players
	session.Summary = nil
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession discards the session and its selection.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID, userID string) error {
	if _, err := s.loadOwnedSession(ctx, sessionID, userID); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultBookingService) loadOwnedSession(ctx context.Context, sessionID, userID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, NewNotFoundError("booking session not found or expired")
	}
	return session, nil
}

func validateSlotForSession(session *models.BookingSession, slot models.Slot) error {
	if slot.SportID != session.SportID {
		return NewValidationError("slot does not belong to the session's sport")
	}
	if slot.StartTime == "" || slot.EndTime == "" {
		return NewValidationError("slot start_time and end_time are required")
	}
	if session.SlotType == models.SlotTypeMonth {
		if slot.Month != session.Month || slot.Year != session.Year {
			return NewValidationError("slot does not match the session's month")
		}
	} else if slot.Date != session.Date {
		return NewValidationError("slot does not match the session's date")
	}
	return nil
}

func toggleAllowed(slot models.Slot, now time.Time) bool {
	if slot.Status != models.SlotStatusAvailable {
		return false
	}
	if slot.SlotType != models.SlotTypeMonth && utils.IsPast(slot.Date, slot.StartTime, now) {
		return false
	}
	return true
}
