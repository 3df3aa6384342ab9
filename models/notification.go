package models

import "time"

// Notification is the stored record behind the app's notification screen.
// Rows are written best-effort alongside each push; a failed insert never
// blocks the flow that produced it.
type Notification struct {
	ID            string            `bson:"id" json:"id"`
	RecipientID   string            `bson:"recipientId" json:"recipientId"`
	RecipientRole string            `bson:"recipientRole" json:"recipientRole"` // "patient" or "doctor"
	Type          string            `bson:"type" json:"type"`
	Title         string            `bson:"title" json:"title"`
	Body          string            `bson:"body" json:"body"`
	Data          map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Sent          bool              `bson:"sent" json:"sent"`
	Read          bool              `bson:"read" json:"read"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}
