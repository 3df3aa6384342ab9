package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"medibook/config"
	"medibook/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "appointment:reminder"

// NewAppointmentReminderTask builds the asynq task for an appointment
// reminder fired at the given instant.
func NewAppointmentReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues reminder tasks onto the redis-backed queue.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleAppointmentReminder queues a reminder one hour before the
// appointment's block opens. Appointments whose reminder instant is already
// in the past are skipped.
func (s *ReminderScheduler) ScheduleAppointmentReminder(appt *models.Appointment) error {
	block, ok := models.TimeBlockByName(appt.Block)
	if !ok {
		return fmt.Errorf("unknown time block %q", appt.Block)
	}

	d := appt.ScheduledAt
	fireAt := time.Date(d.Year(), d.Month(), d.Day(), block.StartHour, 0, 0, 0, d.Location()).Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		DoctorID:      appt.DoctorID,
		DoctorName:    appt.DoctorName,
		Date:          appt.Date,
		Block:         appt.Block,
	}
	task, opts, err := NewAppointmentReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
