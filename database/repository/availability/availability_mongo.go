package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository backed by MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

func NewMongoAvailabilityRepo() *MongoAvailabilityRepo {
	return &MongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
}

func (repo *MongoAvailabilityRepo) GetActiveWindow(ctx context.Context, doctorID string, weekday int) (*models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"weekday":  weekday,
		"isActive": true,
	}
	var window models.AvailabilityWindow
	err := repo.coll.FindOne(ctx, filter).Decode(&window)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability window: %w", err)
	}
	return &window, nil
}

func (repo *MongoAvailabilityRepo) UpsertWindow(ctx context.Context, window *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if window.ID == "" {
		window.ID = uuid.New().String()
	}
	filter := bson.M{
		"doctorId": window.DoctorID,
		"weekday":  window.Weekday,
	}
	update := bson.M{"$set": window}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability window: %w", err)
	}
	return nil
}

func (repo *MongoAvailabilityRepo) ListWindows(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list availability windows: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode availability windows: %w", err)
	}
	return windows, nil
}
