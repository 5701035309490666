package sportRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/database"
	"courtside/models"
)

type mongoSportRepo struct {
	coll *mongo.Collection
}

// NewMongoSportRepo returns a SportRepository backed by the "sports" collection.
func NewMongoSportRepo() SportRepository {
	return &mongoSportRepo{coll: database.Collection("sports")}
}

func (r *mongoSportRepo) Create(ctx context.Context, sport *models.Sport) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sport.ID == "" {
		sport.ID = uuid.New().String()
	}
	now := time.Now()
	sport.CreatedAt = now
	sport.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, sport)
	return err
}

func (r *mongoSportRepo) GetByID(ctx context.Context, id string) (*models.Sport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sport models.Sport
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sport); err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *mongoSportRepo) List(ctx context.Context, activeOnly bool) ([]models.Sport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sports []models.Sport
	if err := cursor.All(ctx, &sports); err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *mongoSportRepo) Update(ctx context.Context, sport *models.Sport) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	sport.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": sport.ID}, sport)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSportRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
