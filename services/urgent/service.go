package urgent

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/services/appointment"
	"medibook/utils"

	"go.uber.org/zap"
)

// FindBestUrgentSlot sweeps the 7-day horizon for every doctor in the pool
// and proposes the earliest, least-loaded viable slot. It is side-effect
// free; the caller must confirm the proposal with ConfirmUrgentBooking
// before anything is persisted.
//
// The doctor pool is assumed pre-filtered by specialty; specialty and
// symptoms only flow into logs and the result envelope.
func (s *DefaultUrgentBookingService) FindBestUrgentSlot(
	ctx context.Context,
	doctors []models.Doctor,
	specialty, symptoms string,
) (result models.UrgentBookingResult) {
	logger := utils.GetLogger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("urgent: panic during slot search", zap.Any("recover", r))
			result = models.UrgentBookingResult{
				Message:           ErrDataAccess.Error(),
				IsDataAccessError: true,
			}
		}
	}()

	if len(doctors) == 0 {
		return models.UrgentBookingResult{
			Message: fmt.Sprintf("no doctors found for %s", specialty),
		}
	}

	today := truncateToDay(s.now())

	slots, failures, windowsSeen := s.collectCandidates(ctx, doctors, s.lookupAvailability, today)
	if windowsSeen == 0 && failures == 0 {
		// No doctor in the pool has a stored schedule. Re-run the sweep
		// once with the weekday default applied to everyone.
		logger.Info("urgent: no stored availability for any candidate, applying default schedule",
			zap.String("specialty", specialty), zap.Int("doctors", len(doctors)))
		slots, failures, _ = s.collectCandidates(ctx, doctors, defaultAvailability, today)
	}

	best, ok := pickBestSlot(slots)
	if !ok {
		if failures > 0 {
			return models.UrgentBookingResult{
				Message:           ErrDataAccess.Error(),
				IsDataAccessError: true,
			}
		}
		return models.UrgentBookingResult{Message: ErrNoSlots.Error()}
	}

	logger.Info("urgent: proposing slot",
		zap.String("doctorId", best.Doctor.ID),
		zap.String("date", best.Date.Format(WireDateLayout)),
		zap.String("block", best.Block.Name),
		zap.Int("booked", best.BookedCount),
		zap.Int("capacity", best.Capacity))

	return models.UrgentBookingResult{
		Success:           true,
		NeedsConfirmation: true,
		DoctorID:          best.Doctor.ID,
		DoctorName:        best.Doctor.Name,
		Specialty:         best.Doctor.Specialty,
		Date:              best.Date.Format(WireDateLayout),
		Block:             best.Block.Name,
		TimeRange:         best.OverlapRange,
		OverlapHours:      best.OverlapHours,
		BookedCount:       best.BookedCount,
		Capacity:          best.Capacity,
		Message:           fmt.Sprintf("Earliest slot: %s with %s (%s)", best.Block.Name, best.Doctor.Name, best.OverlapRange),
	}
}

// ConfirmUrgentBooking commits a previously proposed slot. It does not
// re-check capacity before writing: between search and confirm another
// booking may take the last unit, and that race is accepted.
func (s *DefaultUrgentBookingService) ConfirmUrgentBooking(
	ctx context.Context,
	req models.UrgentConfirmRequest,
) models.UrgentBookingResult {
	day, err := time.ParseInLocation(WireDateLayout, req.Date, time.Local)
	if err != nil {
		return models.UrgentBookingResult{
			Message: fmt.Sprintf("invalid appointment date %q, expected dd/MM/yyyy", req.Date),
		}
	}
	if _, ok := models.TimeBlockByName(req.Block); !ok {
		return models.UrgentBookingResult{
			Message: fmt.Sprintf("unknown time block %q", req.Block),
		}
	}

	appt, err := s.Appointments.Create(ctx, appointment.CreateInput{
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		Specialty:   req.Specialty,
		Date:        day,
		Block:       req.Block,
		Notes:       req.Symptoms,
	})
	if err != nil {
		return models.UrgentBookingResult{
			Message: fmt.Sprintf("failed to book appointment: %v", err),
		}
	}

	s.dispatchBookingNotifications(ctx, appt)

	return models.UrgentBookingResult{
		Success:       true,
		DoctorID:      appt.DoctorID,
		DoctorName:    appt.DoctorName,
		Specialty:     appt.Specialty,
		Date:          day.Format(WireDateLayout),
		Block:         appt.Block,
		AppointmentID: appt.ID,
		TicketNumber:  appt.TicketNumber,
		Message:       fmt.Sprintf("Appointment #%d booked with %s", appt.TicketNumber, appt.DoctorName),
	}
}

// dispatchBookingNotifications pushes a confirmation to the patient and the
// doctor. Each send is independent and best-effort; a failure is logged and
// never surfaces to the booking result.
func (s *DefaultUrgentBookingService) dispatchBookingNotifications(ctx context.Context, appt *models.Appointment) {
	logger := utils.GetLogger()
	data := map[string]string{
		"type":          "urgent_booking",
		"appointmentId": appt.ID,
	}
	when := fmt.Sprintf("%s (%s)", appt.ScheduledAt.Format("Mon, 02 Jan 2006"), appt.Block)

	if err := s.Notifier.SendPatientPush(ctx, appt.PatientID,
		"Appointment booked",
		fmt.Sprintf("Your urgent appointment with %s is booked for %s. Ticket #%d.", appt.DoctorName, when, appt.TicketNumber),
		data,
	); err != nil {
		logger.Warn("urgent: patient notification failed", zap.String("patientId", appt.PatientID), zap.Error(err))
	}

	if err := s.Notifier.SendDoctorPush(ctx, appt.DoctorID,
		"New urgent appointment",
		fmt.Sprintf("%s booked an urgent appointment for %s. Ticket #%d.", appt.PatientName, when, appt.TicketNumber),
		data,
	); err != nil {
		logger.Warn("urgent: doctor notification failed", zap.String("doctorId", appt.DoctorID), zap.Error(err))
	}
}

func (s *DefaultUrgentBookingService) lookupAvailability(ctx context.Context, doctorID string, weekday int) (*models.AvailabilityWindow, error) {
	return s.AvailabilityRepo.GetActiveWindow(ctx, doctorID, weekday)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
