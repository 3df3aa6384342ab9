package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextTicketNumber increments and returns the sequential ticket counter for
// a doctor's calendar day. The counter lives in its own document and is
// advanced with a single findOneAndUpdate, so concurrent bookings never
// observe the same number.
func (repo *MongoAppointmentRepo) NextTicketNumber(ctx context.Context, doctorID string, day time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": fmt.Sprintf("tickets:%s:%s", doctorID, models.DayKey(day))}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := repo.counterColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to advance ticket counter: %w", err)
	}
	return counter.Seq, nil
}
