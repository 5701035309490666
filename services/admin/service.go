package admin

import (
	"context"
	"strings"
	"time"

	recordsRepo "courtside/database/repository/records"
	userRepo "courtside/database/repository/user"
	"courtside/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminService covers the back-office surface: user listing, gallery content
// and contact enquiries.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error

	AddGalleryItem(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	ListGallery(ctx context.Context) ([]models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error)
	ListEnquiries(ctx context.Context) ([]models.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id string) error
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Users   userRepo.UserRepository
	Records recordsRepo.RecordRepository
	Logger  *zap.Logger
}

func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.List(ctx)
}

func (s *DefaultAdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Users.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("user deleted", zap.String("userId", id))
	return nil
}

func (s *DefaultAdminService) AddGalleryItem(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	if err := s.Records.CreateGalleryItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DefaultAdminService) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	return s.Records.ListGallery(ctx)
}

func (s *DefaultAdminService) DeleteGalleryItem(ctx context.Context, id string) error {
	return s.Records.DeleteGalleryItem(ctx, id)
}

// SubmitEnquiry records a contact-form message. This is the one public write
// on the admin surface.
func (s *DefaultAdminService) SubmitEnquiry(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
	enquiry.Name = strings.TrimSpace(enquiry.Name)
	enquiry.Message = strings.TrimSpace(enquiry.Message)
	enquiry.ID = uuid.New().String()
	enquiry.CreatedAt = time.Now()
	if err := s.Records.CreateEnquiry(ctx, enquiry); err != nil {
		return nil, err
	}
	s.Logger.Info("enquiry received", zap.String("enquiryId", enquiry.ID))
	return enquiry, nil
}

func (s *DefaultAdminService) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	return s.Records.ListEnquiries(ctx)
}

func (s *DefaultAdminService) DeleteEnquiry(ctx context.Context, id string) error {
	return s.Records.DeleteEnquiry(ctx, id)
}
