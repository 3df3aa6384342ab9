package models

import "time"

// Patient is the app-user profile consulted for notification delivery.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
