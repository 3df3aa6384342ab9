package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository backed by MongoDB.
type MongoAppointmentRepo struct {
	coll        *mongo.Collection
	counterColl *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{
		coll:        database.DB().Collection("appointments"),
		counterColl: database.DB().Collection("counters"),
	}
}

func (repo *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) CountActiveBookings(ctx context.Context, doctorID string, day time.Time, blockName string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     models.DayKey(day),
		"block":    blockName,
		"status":   bson.M{"$in": models.ActiveAppointmentStatuses},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return int(count), nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

func (repo *MongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{"patientId": patientID})
}

func (repo *MongoAppointmentRepo) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{"doctorId": doctorID})
}

func (repo *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
