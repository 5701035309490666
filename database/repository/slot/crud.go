package slotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"courtside/models"
)

func (r *mongoSlotRepo) CreateMany(ctx context.Context, records []models.SlotRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		if rec.Status == "" {
			rec.Status = models.SlotStatusAvailable
		}
		docs[i] = rec
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoSlotRepo) GetBySportAndDate(ctx context.Context, sportID, date string) ([]models.SlotRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"sports_id": sportID, "slot_type": models.SlotTypeDay, "date": date}
	return r.find(ctx, filter)
}

func (r *mongoSlotRepo) GetBySportAndMonth(ctx context.Context, sportID, month, year string) ([]models.SlotRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Month filters are abbreviation-keyed (JAN..DEC), never numeric.
	filter := bson.M{
		"sports_id":  sportID,
		"slot_type":  models.SlotTypeMonth,
		"type_month": month,
		"type_year":  year,
	}
	return r.find(ctx, filter)
}

func (r *mongoSlotRepo) find(ctx context.Context, filter bson.M) ([]models.SlotRecord, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.SlotRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func slotIdentityFilter(s models.Slot) bson.M {
	filter := bson.M{
		"sports_id":  s.SportID,
		"start_time": s.StartTime,
		"end_time":   s.EndTime,
	}
	if s.SlotType == models.SlotTypeMonth {
		filter["type_month"] = s.Month
		filter["type_year"] = s.Year
	} else {
		filter["date"] = s.Date
	}
	return filter
}

func (r *mongoSlotRepo) Reserve(ctx context.Context, slots []models.Slot, paymentID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reserved int64
	for _, s := range slots {
		filter := slotIdentityFilter(s)
		filter["status"] = models.SlotStatusAvailable
		update := bson.M{"$set": bson.M{
			"status":      models.SlotStatusBooked,
			"reserved_by": paymentID,
		}}
		res, err := r.coll.UpdateOne(ctx, filter, update)
		if err != nil {
			return reserved, err
		}
		reserved += res.ModifiedCount
	}
	return reserved, nil
}

func (r *mongoSlotRepo) Release(ctx context.Context, slots []models.Slot, paymentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, s := range slots {
		// Scoped to this attempt's reservation tag: releasing never frees a
		// slot another attempt holds.
		filter := slotIdentityFilter(s)
		filter["status"] = models.SlotStatusBooked
		filter["reserved_by"] = paymentID
		update := bson.M{
			"$set":   bson.M{"status": models.SlotStatusAvailable},
			"$unset": bson.M{"reserved_by": ""},
		}
		if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
			return err
		}
	}
	return nil
}

func (r *mongoSlotRepo) DeleteBySport(ctx context.Context, sportID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"sports_id": sportID})
	return err
}
