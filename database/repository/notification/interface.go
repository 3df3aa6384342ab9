package notificationRepo

import (
	"context"

	"medibook/models"
)

// NotificationRepository stores notification records for the app's
// notification screen.
type NotificationRepository interface {
	Insert(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
}
