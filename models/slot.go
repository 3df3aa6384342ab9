package models

import "time"

// AvailableSlot is a viable (doctor, date, block) candidate produced by the
// urgent-slot sweep. Instances only exist while BookedCount < Capacity; they
// are rebuilt on every search and never persisted.
type AvailableSlot struct {
	Doctor       Doctor    `json:"doctor"`
	Date         time.Time `json:"date"` // midnight, caller's local calendar
	Block        TimeBlock `json:"block"`
	OverlapRange string    `json:"overlapRange"` // e.g. "9:00 AM - 12:00 PM"
	OverlapHours int       `json:"overlapHours"`
	BookedCount  int       `json:"bookedCount"`
	Capacity     int       `json:"capacity"`
}
