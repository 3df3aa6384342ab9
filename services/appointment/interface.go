package appointment

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/tasks"
)

// CreateInput carries everything needed to book an appointment through the
// general creation path.
type CreateInput struct {
	PatientID   string
	PatientName string
	DoctorID    string
	DoctorName  string
	Specialty   string
	Date        time.Time
	Block       string
	Notes       string
}

// AppointmentService is the general appointment lifecycle: creation with
// ticket allocation and fee lookup, plus the thin CRUD the mobile screens
// call.
type AppointmentService interface {
	Create(ctx context.Context, in CreateInput) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	DoctorRepo doctorRepo.DoctorRepository
	// Reminders is optional; nil disables reminder scheduling.
	Reminders *tasks.ReminderScheduler
}
