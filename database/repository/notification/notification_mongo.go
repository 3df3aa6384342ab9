package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository backed by MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

func NewMongoNotificationRepo() *MongoNotificationRepo {
	return &MongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}

func (repo *MongoNotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (repo *MongoNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"recipientId": recipientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notes []models.Notification
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notes, nil
}
