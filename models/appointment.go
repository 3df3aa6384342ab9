package models

import "time"

// Appointment statuses. Active statuses count against a block's capacity;
// cancelled and completed appointments free it up.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentPending   = "pending"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// ActiveAppointmentStatuses are the statuses that occupy capacity.
var ActiveAppointmentStatuses = []string{
	AppointmentScheduled,
	AppointmentConfirmed,
	AppointmentPending,
}

// Appointment is a persisted booking of a doctor's time block.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	DoctorName  string    `bson:"doctorName" json:"doctorName"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	PatientName string    `bson:"patientName" json:"patientName"`
	Specialty   string    `bson:"specialty" json:"specialty"`
	Date        string    `bson:"date" json:"date"` // day key, "2006-01-02"
	ScheduledAt time.Time `bson:"scheduledAt" json:"scheduledAt"`
	Block       string    `bson:"block" json:"block"` // time block name, e.g. "Morning"
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Fee         float64   `bson:"fee" json:"fee"`
	// TicketNumber is sequential per doctor per day, allocated from an
	// atomic counter document.
	TicketNumber int       `bson:"ticketNumber" json:"ticketNumber"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DayKeyLayout is the storage key layout for appointment dates.
const DayKeyLayout = "2006-01-02"

// DayKey truncates t to its calendar day storage key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}
