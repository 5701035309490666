package models

// Slot type and status values.
const (
	SlotTypeDay   = "DAY"
	SlotTypeMonth = "MONTH"

	SlotStatusAvailable = "AVAILABLE"
	SlotStatusBooked    = "BOOKED"
)

// Slot is a normalized bookable time interval. Day-mode slots carry Date;
// month-mode slots carry Month (3-letter abbreviation) and Year instead.
type Slot struct {
	ID        string  `bson:"id" json:"id"`
	SportID   string  `bson:"sports_id" json:"sports_id"`
	SportName string  `bson:"sport_name,omitempty" json:"sport_name,omitempty"`
	SlotType  string  `bson:"slot_type" json:"slot_type"`
	Date      string  `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
	Month     string  `bson:"type_month,omitempty" json:"type_month,omitempty"`
	Year      string  `bson:"type_year,omitempty" json:"type_year,omitempty"`
	StartTime string  `bson:"start_time" json:"start_time"` // "HH:MM" 24-hour
	EndTime   string  `bson:"end_time" json:"end_time"`
	Status    string  `bson:"status" json:"status"`
	Price     float64 `bson:"price" json:"price"`
}

// DateKey returns the calendar component of the slot's identity: the ISO
// date in day mode, or the month abbreviation plus year in month mode.
func (s Slot) DateKey() string {
	if s.SlotType == SlotTypeMonth {
		return s.Month + "-" + s.Year
	}
	return s.Date
}

// Key returns the slot's selection identity. Two slots with the same key are
// the same selection unit regardless of price, status or sport metadata.
func (s Slot) Key() string {
	return s.StartTime + "|" + s.EndTime + "|" + s.DateKey()
}

// SlotRecord is the raw storage shape of a slot before normalization. Field
// names are inconsistent across sources (price vs total_price, nested sport
// document vs flat name); the availability service resolves them into a Slot.
type SlotRecord struct {
	ID         string  `bson:"id,omitempty"`
	SportID    string  `bson:"sports_id"`
	SlotType   string  `bson:"slot_type"`
	Date       string  `bson:"date,omitempty"`
	Month      string  `bson:"type_month,omitempty"`
	Year       string  `bson:"type_year,omitempty"`
	StartTime  string  `bson:"start_time"`
	EndTime    string  `bson:"end_time"`
	Status     string  `bson:"status,omitempty"`
	Price      float64 `bson:"price,omitempty"`
	TotalPrice float64 `bson:"total_price,omitempty"`
	SportName  string  `bson:"sport_name,omitempty"`
	Sport      *Sport  `bson:"sport,omitempty"`
}
