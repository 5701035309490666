package bookingRepo

import (
	"errors"

	"courtside/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStateConflict is returned when a status transition finds the attempt in
// an unexpected state.
var ErrStateConflict = errors.New("payment attempt not in expected state")

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the "payments"
// collection.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.Collection("payments")}
}
