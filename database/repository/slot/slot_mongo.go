package slotRepo

import (
	"courtside/database"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo returns a SlotRepository backed by the "slots" collection.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{coll: database.Collection("slots")}
}
