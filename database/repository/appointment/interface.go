package appointmentRepo

import (
	"context"
	"time"

	"medibook/models"
)

// AppointmentRepository is the booking ledger. Appointments with an active
// status occupy capacity in their (doctor, date, block) bucket until
// cancelled or completed.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// CountActiveBookings counts ledger entries for the doctor's block on
	// the given calendar day whose status is scheduled, confirmed or pending.
	CountActiveBookings(ctx context.Context, doctorID string, day time.Time, blockName string) (int, error)
	// NextTicketNumber atomically increments and returns the per-doctor,
	// per-day ticket counter.
	NextTicketNumber(ctx context.Context, doctorID string, day time.Time) (int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
}
