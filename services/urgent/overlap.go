package urgent

import (
	"fmt"
	"time"

	"medibook/models"
)

// BlockOverlap is the intersection of a doctor's daily window with one of
// the fixed time blocks.
type BlockOverlap struct {
	Range string // display range, e.g. "9:00 AM - 12:00 PM"
	Hours int    // whole hours; partial hours round up
}

// ComputeOverlap intersects the doctor's working window [doctorStart,
// doctorEnd) with the block's hour range. Times are "HH:mm" strings;
// unparseable input means no overlap. A window that merely touches a block
// boundary does not overlap.
//
// Duration is ceil(overlapMinutes/60): a 61-minute overlap reports 2 hours.
func ComputeOverlap(doctorStart, doctorEnd string, block models.TimeBlock) (BlockOverlap, bool) {
	ds, okStart := parseClock(doctorStart)
	de, okEnd := parseClock(doctorEnd)
	if !okStart || !okEnd {
		return BlockOverlap{}, false
	}

	bs := block.StartHour * 60
	be := block.EndHour * 60
	if de <= bs || ds >= be {
		return BlockOverlap{}, false
	}

	start := max(ds, bs)
	end := min(de, be)
	if start >= end {
		return BlockOverlap{}, false
	}

	minutes := end - start
	return BlockOverlap{
		Range: fmt.Sprintf("%s - %s", formatClock(start), formatClock(end)),
		Hours: (minutes + 59) / 60,
	}, true
}

// parseClock converts "HH:mm" into minutes from midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// formatClock renders minutes from midnight on a 12-hour clock.
func formatClock(minutes int) string {
	t := time.Date(2000, time.January, 1, 0, minutes, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}
