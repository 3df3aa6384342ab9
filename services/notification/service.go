package notification

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendPatientPush looks up the patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPush(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	p, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPush: could not find patient %s: %w", patientID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendPatientPush: patient %s has no FCM token", patientID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "patient"
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	sendErr := send(ctx, msg)
	s.record(ctx, patientID, "patient", title, body, data, sendErr == nil)
	return sendErr
}

// SendDoctorPush looks up the doctor's FCM token and sends a high-priority
// push.
func (s *DefaultNotificationService) SendDoctorPush(
	ctx context.Context,
	doctorID, title, body string,
	data map[string]string,
) error {
	d, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("SendDoctorPush: could not find doctor %s: %w", doctorID, err)
	}
	if d.FCMToken == "" {
		return fmt.Errorf("SendDoctorPush: doctor %s has no FCM token", doctorID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "doctor"
	}

	msg := &messaging.Message{
		Token: d.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	sendErr := send(ctx, msg)
	s.record(ctx, doctorID, "doctor", title, body, data, sendErr == nil)
	return sendErr
}

func send(ctx context.Context, msg *messaging.Message) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

// record persists the notification for the app's notification screen.
// Best-effort: an insert failure is logged and swallowed.
func (s *DefaultNotificationService) record(
	ctx context.Context,
	recipientID, role, title, body string,
	data map[string]string,
	sent bool,
) {
	if s.Records == nil {
		return
	}
	n := &models.Notification{
		ID:            uuid.New().String(),
		RecipientID:   recipientID,
		RecipientRole: role,
		Type:          data["type"],
		Title:         title,
		Body:          body,
		Data:          data,
		Sent:          sent,
		CreatedAt:     time.Now(),
	}
	if err := s.Records.Insert(ctx, n); err != nil {
		utils.GetLogger().Warn("notification: failed to persist record",
			zap.String("recipientId", recipientID), zap.Error(err))
	}
}
