package models

// AvailabilityWindow is a doctor's active working window for one weekday.
// Weekday follows ISO numbering: 1=Monday .. 7=Sunday. Times are "HH:mm"
// on a 24h clock. At most one active window per (doctor, weekday) is
// consulted by the slot engine; the first match wins.
type AvailabilityWindow struct {
	ID        string `bson:"id,omitempty" json:"id,omitempty"`
	DoctorID  string `bson:"doctorId" json:"doctorId"`
	Weekday   int    `bson:"weekday" json:"weekday"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}
