package models

import "time"

// GalleryItem is a piece of media shown on the public gallery. Only metadata
// and an externally hosted URL are stored.
type GalleryItem struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	MediaURL  string    `bson:"media_url" json:"media_url"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Enquiry is a contact-form submission.
type Enquiry struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
