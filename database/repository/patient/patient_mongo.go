package patientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPatientRepo implements PatientRepository backed by MongoDB.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

func NewMongoPatientRepo() *MongoPatientRepo {
	return &MongoPatientRepo{
		coll: database.DB().Collection("patients"),
	}
}

func (repo *MongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Patient
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("patient %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	return &p, nil
}
