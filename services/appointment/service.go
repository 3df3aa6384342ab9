package appointment

import (
	"context"
	"fmt"
	"slices"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books an appointment: it allocates the per-doctor-per-day ticket
// number from the atomic counter, looks up the doctor's consultation fee and
// persists the row as "scheduled". A reminder task is enqueued best-effort.
func (s *DefaultAppointmentService) Create(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if in.PatientID == "" || in.DoctorID == "" {
		return nil, fmt.Errorf("patient and doctor are required")
	}
	if _, ok := models.TimeBlockByName(in.Block); !ok {
		return nil, fmt.Errorf("unknown time block %q", in.Block)
	}

	ticket, err := s.Repo.NextTicketNumber(ctx, in.DoctorID, in.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate ticket number: %w", err)
	}

	var fee float64
	if doc, err := s.DoctorRepo.GetByID(ctx, in.DoctorID); err != nil {
		logger.Warn("appointment: fee lookup failed, defaulting to 0",
			zap.String("doctorId", in.DoctorID), zap.Error(err))
	} else {
		fee = doc.ConsultationFee
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:           uuid.New().String(),
		DoctorID:     in.DoctorID,
		DoctorName:   in.DoctorName,
		PatientID:    in.PatientID,
		PatientName:  in.PatientName,
		Specialty:    in.Specialty,
		Date:         models.DayKey(in.Date),
		ScheduledAt:  in.Date,
		Block:        in.Block,
		Status:       models.AppointmentScheduled,
		Notes:        in.Notes,
		Fee:          fee,
		TicketNumber: ticket,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Insert(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(appt); err != nil {
			logger.Warn("appointment: reminder scheduling failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) error {
	return s.UpdateStatus(ctx, id, models.AppointmentCancelled)
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id, status string) error {
	if !slices.Contains([]string{
		models.AppointmentScheduled,
		models.AppointmentConfirmed,
		models.AppointmentPending,
		models.AppointmentCompleted,
		models.AppointmentCancelled,
	}, status) {
		return fmt.Errorf("invalid appointment status %q", status)
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	return nil
}

func (s *DefaultAppointmentService) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Repo.ListByPatient(ctx, patientID)
}

func (s *DefaultAppointmentService) ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.Repo.ListByDoctor(ctx, doctorID)
}
