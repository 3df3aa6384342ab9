package urgent

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	availabilityRepo "medibook/database/repository/availability"
	"medibook/models"
	"medibook/services/appointment"
	"medibook/services/notification"
)

// WireDateLayout is the date format exchanged between the search and confirm
// phases. A confirm request must echo the search output exactly.
const WireDateLayout = "02/01/2006"

// UrgentBookingService finds and books the earliest, least-loaded slot for a
// pool of doctors. The two phases are deliberately separate calls: a search
// proposes a slot without persisting anything, and only an explicit confirm
// carrying the proposal's identifiers writes an appointment.
type UrgentBookingService interface {
	FindBestUrgentSlot(ctx context.Context, doctors []models.Doctor, specialty, symptoms string) models.UrgentBookingResult
	ConfirmUrgentBooking(ctx context.Context, req models.UrgentConfirmRequest) models.UrgentBookingResult
}

// DefaultUrgentBookingService implements UrgentBookingService.
type DefaultUrgentBookingService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	AppointmentRepo  appointmentRepo.AppointmentRepository
	Appointments     appointment.AppointmentService
	Notifier         notification.NotificationService

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultUrgentBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
