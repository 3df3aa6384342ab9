package patientRepo

import (
	"context"

	"medibook/models"
)

// PatientRepository provides read access to patient profiles.
type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*models.Patient, error)
}
