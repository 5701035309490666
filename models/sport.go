package models

import "time"

// Sport represents a bookable sport/ground in the facility catalog.
type Sport struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Ground        string    `bson:"ground" json:"ground"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	DayPrice      float64   `bson:"day_price" json:"day_price"`           // price per day-mode slot
	MonthPrice    float64   `bson:"month_price" json:"month_price"`       // price per month-mode slot
	LightingPrice float64   `bson:"lighting_price" json:"lighting_price"` // surcharge for floodlit evening slots
	Currency      string    `bson:"currency" json:"currency"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
