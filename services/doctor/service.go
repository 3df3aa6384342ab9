package doctor

import (
	"context"
	"fmt"

	"medibook/models"
)

func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	return s.Repo.FindBySpecialty(ctx, specialty)
}

// SetWeeklyAvailability upserts one window per weekday for the doctor.
func (s *DefaultDoctorService) SetWeeklyAvailability(ctx context.Context, doctorID string, windows []models.AvailabilityWindow) error {
	if _, err := s.Repo.GetByID(ctx, doctorID); err != nil {
		return err
	}
	for i := range windows {
		w := windows[i]
		if w.Weekday < 1 || w.Weekday > 7 {
			return fmt.Errorf("invalid weekday %d, expected 1 (Monday) to 7 (Sunday)", w.Weekday)
		}
		w.DoctorID = doctorID
		if err := s.AvailabilityRepo.UpsertWindow(ctx, &w); err != nil {
			return err
		}
	}
	return nil
}

func (s *DefaultDoctorService) GetWeeklyAvailability(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error) {
	return s.AvailabilityRepo.ListWindows(ctx, doctorID)
}
