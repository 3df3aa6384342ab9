package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"medibook/config"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/tasks"
	"medibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the asynq reminder consumer in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(notifSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("reminder worker starting")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("reminder worker failed to start", zap.Error(err))
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder: invalid payload", zap.Error(err))
			return err
		}

		data := map[string]string{
			"type":          "appointment_reminder",
			"appointmentId": p.AppointmentID,
		}

		if err := notifSvc.SendPatientPush(ctx, p.PatientID,
			"Upcoming appointment",
			fmt.Sprintf("Your %s appointment with %s is coming up soon.", p.Block, p.DoctorName),
			data,
		); err != nil {
			logger.Warn("reminder: patient push failed",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
		}

		if err := notifSvc.SendDoctorPush(ctx, p.DoctorID,
			"Upcoming appointment",
			fmt.Sprintf("You have a %s appointment on %s.", p.Block, p.Date),
			data,
		); err != nil {
			logger.Warn("reminder: doctor push failed",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
		}

		return nil
	}
}
