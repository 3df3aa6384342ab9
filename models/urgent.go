package models

// UrgentBookingResult is the outcome envelope for both phases of the urgent
// booking flow. After a successful search NeedsConfirmation is true and the
// slot fields describe the proposal; after a successful confirm it is false
// and AppointmentID/TicketNumber identify the persisted appointment.
//
// Failures never surface as errors to the caller: Success is false and
// Message explains why. IsDataAccessError distinguishes "we could not read
// availability" from the legitimate empty result "no slots found".
type UrgentBookingResult struct {
	Success           bool   `json:"success"`
	NeedsConfirmation bool   `json:"needsConfirmation"`
	DoctorID          string `json:"doctorId,omitempty"`
	DoctorName        string `json:"doctorName,omitempty"`
	Specialty         string `json:"specialty,omitempty"`
	Date              string `json:"date,omitempty"` // wire format dd/MM/yyyy
	Block             string `json:"block,omitempty"`
	TimeRange         string `json:"timeRange,omitempty"`
	OverlapHours      int    `json:"overlapHours,omitempty"`
	BookedCount       int    `json:"bookedCount,omitempty"`
	Capacity          int    `json:"capacity,omitempty"`
	AppointmentID     string `json:"appointmentId,omitempty"`
	TicketNumber      int    `json:"ticketNumber,omitempty"`
	Message           string `json:"message,omitempty"`
	IsDataAccessError bool   `json:"isDataAccessError,omitempty"`
}

// UrgentConfirmRequest carries the slot identifiers echoed back from a search
// proposal. Date must round-trip the search output exactly (dd/MM/yyyy).
type UrgentConfirmRequest struct {
	PatientID   string `json:"patientId" binding:"required"`
	PatientName string `json:"patientName" binding:"required"`
	DoctorID    string `json:"doctorId" binding:"required"`
	DoctorName  string `json:"doctorName"`
	Specialty   string `json:"specialty"`
	Date        string `json:"date" binding:"required"`
	Block       string `json:"block" binding:"required"`
	Symptoms    string `json:"symptoms"`
}
