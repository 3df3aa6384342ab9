package models

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	DoctorID      string `json:"doctorId"`
	DoctorName    string `json:"doctorName"`
	Date          string `json:"date"` // day key, "2006-01-02"
	Block         string `json:"block"`
}
