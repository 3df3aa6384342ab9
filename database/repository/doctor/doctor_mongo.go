package doctorRepo

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

// MongoDoctorRepo implements DoctorRepository backed by MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo() *MongoDoctorRepo {
	return &MongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}

func (repo *MongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Doctor
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("doctor %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}
	return &doc, nil
}

func (repo *MongoDoctorRepo) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"specialty": specialty})
	if err != nil {
		return nil, fmt.Errorf("failed to find doctors by specialty: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}
