package recordsRepo

import (
	"context"

	"courtside/models"
)

// RecordRepository covers the admin-managed content collections: gallery
// media metadata and contact enquiries.
type RecordRepository interface {
	CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error
	ListGallery(ctx context.Context) ([]models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) error
	ListEnquiries(ctx context.Context) ([]models.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id string) error
}
