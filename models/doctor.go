package models

import "time"

// Doctor represents a doctor profile from the directory. During an urgent
// search doctors are read-only candidates, pre-filtered by specialty.
type Doctor struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Specialty       string    `bson:"specialty" json:"specialty"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ConsultationFee float64   `bson:"consultationFee,omitempty" json:"consultationFee,omitempty"`
	FCMToken        string    `bson:"fcmToken,omitempty" json:"-"`
	// Free-text fallback schedule shown in profile screens when the doctor
	// has not set up structured weekly availability (e.g. "Mon,Wed,Fri",
	// "10am - 4pm"). Never consulted by the slot engine.
	DefaultDays   string `bson:"defaultDays,omitempty" json:"defaultDays,omitempty"`
	DefaultTiming string `bson:"defaultTiming,omitempty" json:"defaultTiming,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
