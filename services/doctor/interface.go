package doctor

import (
	"context"

	availabilityRepo "medibook/database/repository/availability"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
)

// DoctorService exposes the doctor directory and weekly schedule management.
// The slot engine consumes the windows written here; it never reads the
// free-text fallback fields on the doctor profile.
type DoctorService interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)
	SetWeeklyAvailability(ctx context.Context, doctorID string, windows []models.AvailabilityWindow) error
	GetWeeklyAvailability(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error)
}

// DefaultDoctorService implements DoctorService.
type DefaultDoctorService struct {
	Repo             doctorRepo.DoctorRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
}
