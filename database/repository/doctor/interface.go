package doctorRepo

import (
	"context"

	"medibook/models"
)

// DoctorRepository provides read access to the doctor directory.
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)
}
