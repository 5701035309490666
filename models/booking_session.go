package models

// SelectedSlotSet is an ordered, duplicate-free sequence of slots chosen by
// the user for the current booking attempt. Identity is structural: the
// (start_time, end_time, date-key) tuple, never a display string.
type SelectedSlotSet []Slot

// Contains reports whether a slot with the same identity is in the set.
func (set SelectedSlotSet) Contains(slot Slot) bool {
	key := slot.Key()
	for _, s := range set {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// Toggle returns the set with the slot appended if absent, or removed if a
// slot with the same identity is already present. A full copy of the slot
// record is stored so price and sport metadata travel with the selection.
func (set SelectedSlotSet) Toggle(slot Slot) SelectedSlotSet {
	key := slot.Key()
	for i, s := range set {
		if s.Key() == key {
			return append(append(SelectedSlotSet{}, set[:i]...), set[i+1:]...)
		}
	}
	return append(append(SelectedSlotSet{}, set...), slot)
}

// BookingSession holds the state of one booking attempt between slot
// selection and payment. It lives in the session cache keyed by SessionID.
type BookingSession struct {
	SessionID   string          `json:"sessionId"`
	UserID      string          `json:"userId"`
	SportID     string          `json:"sportsId"`
	SportName   string          `json:"sportName"`
	Ground      string          `json:"ground"`
	SlotType    string          `json:"slotType"`
	Date        string          `json:"date,omitempty"`
	Month       string          `json:"typeMonth,omitempty"`
	Year        string          `json:"typeYear,omitempty"`
	NoOfPlayers int             `json:"noOfPlayers"`
	Selected    SelectedSlotSet `json:"selected"`
	Summary     *BookingSummary `json:"summary,omitempty"`
	// ActivePaymentID is set while a payment attempt is in flight. Exactly
	// one attempt may be active per session.
	ActivePaymentID string `json:"activePaymentId,omitempty"`
}

// SummarySlot is one priced line of a booking summary.
type SummarySlot struct {
	Date      string  `json:"date,omitempty"`
	Month     string  `json:"type_month,omitempty"`
	Year      string  `json:"type_year,omitempty"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Label     string  `json:"label"`
	Amount    float64 `json:"amount"`
}

// BreakdownLine is an itemized charge in a booking summary.
type BreakdownLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// BookingSummary is the server-computed pricing for the current selection.
// It is discarded whenever the selection or player count changes.
type BookingSummary struct {
	SportName   string          `json:"sport_name"`
	Ground      string          `json:"ground"`
	NoOfPlayers int             `json:"no_of_players"`
	Slots       []SummarySlot   `json:"slots"`
	Breakdown   []BreakdownLine `json:"breakdown,omitempty"`
	TotalAmount float64         `json:"total_amount"`
	Currency    string          `json:"currency"`
}
