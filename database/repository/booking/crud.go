package bookingRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

func (r *mongoBookingRepo) CreateAttempt(ctx context.Context, attempt *models.PaymentAttempt) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	attempt.CreatedAt = now
	attempt.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, attempt)
	return err
}

func (r *mongoBookingRepo) GetAttemptByPaymentID(ctx context.Context, paymentID string) (*models.PaymentAttempt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var attempt models.PaymentAttempt
	err := r.coll.FindOne(ctx, bson.M{"payment_id": paymentID}).Decode(&attempt)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *mongoBookingRepo) TransitionStatus(ctx context.Context, paymentID string, from []string, to string) (*models.PaymentAttempt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"payment_id": paymentID, "status": bson.M{"$in": from}}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var attempt models.PaymentAttempt
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&attempt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrStateConflict
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *mongoBookingRepo) ListPendingOlderThan(ctx context.Context, age time.Duration) ([]models.PaymentAttempt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":     bson.M{"$in": []string{models.PaymentStatusCreated, models.PaymentStatusOnlinePending, models.PaymentStatusVerifying}},
		"created_at": bson.M{"$lt": time.Now().Add(-age)},
	}
	return r.find(ctx, filter)
}

func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.PaymentAttempt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.PaymentAttempt, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attempts []models.PaymentAttempt
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}
