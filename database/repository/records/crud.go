package recordsRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/database"
	"courtside/models"
)

type mongoRecordRepo struct {
	gallery   *mongo.Collection
	enquiries *mongo.Collection
}

// NewMongoRecordRepo returns a RecordRepository backed by the "gallery" and
// "enquiries" collections.
func NewMongoRecordRepo() RecordRepository {
	return &mongoRecordRepo{
		gallery:   database.Collection("gallery"),
		enquiries: database.Collection("enquiries"),
	}
}

func (r *mongoRecordRepo) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	_, err := r.gallery.InsertOne(ctx, item)
	return err
}

func (r *mongoRecordRepo) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.gallery.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoRecordRepo) DeleteGalleryItem(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.gallery.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoRecordRepo) CreateEnquiry(ctx context.Context, enquiry *models.Enquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if enquiry.ID == "" {
		enquiry.ID = uuid.New().String()
	}
	enquiry.CreatedAt = time.Now()
	_, err := r.enquiries.InsertOne(ctx, enquiry)
	return err
}

func (r *mongoRecordRepo) ListEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.enquiries.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enquiries []models.Enquiry
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *mongoRecordRepo) DeleteEnquiry(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.enquiries.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
