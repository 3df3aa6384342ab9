package notification

import (
	"context"

	doctorRepo "medibook/database/repository/doctor"
	notificationRepo "medibook/database/repository/notification"
	patientRepo "medibook/database/repository/patient"
)

// NotificationService sends FCM pushes to patients and doctors. All sends
// are best-effort from the caller's point of view: callers log failures and
// move on.
type NotificationService interface {
	SendPatientPush(ctx context.Context, patientID, title, body string, data map[string]string) error
	SendDoctorPush(ctx context.Context, doctorID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Patients patientRepo.PatientRepository
	Doctors  doctorRepo.DoctorRepository
	Records  notificationRepo.NotificationRepository
}
