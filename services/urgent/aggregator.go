package urgent

import (
	"context"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// searchHorizonDays is the rolling window swept by an urgent search, today
// included.
const searchHorizonDays = 7

// availabilityLookup resolves a doctor's active window for an ISO weekday
// (1=Monday .. 7=Sunday). nil window means no availability that day.
type availabilityLookup func(ctx context.Context, doctorID string, weekday int) (*models.AvailabilityWindow, error)

// collectCandidates sweeps the horizon and returns every (doctor, date,
// block) triple with remaining capacity, plus the number of lookup failures
// and the number of availability windows actually seen. A failing candidate
// is logged and skipped; the sweep never aborts.
func (s *DefaultUrgentBookingService) collectCandidates(
	ctx context.Context,
	doctors []models.Doctor,
	lookup availabilityLookup,
	today time.Time,
) (slots []models.AvailableSlot, failures, windowsSeen int) {
	logger := utils.GetLogger()

	for offset := 0; offset < searchHorizonDays; offset++ {
		day := today.AddDate(0, 0, offset)
		weekday := isoWeekday(day)

		for _, doc := range doctors {
			window, err := lookup(ctx, doc.ID, weekday)
			if err != nil {
				failures++
				logger.Warn("urgent: availability lookup failed, skipping candidate",
					zap.String("doctorId", doc.ID), zap.Int("weekday", weekday), zap.Error(err))
				continue
			}
			if window == nil || !window.IsActive {
				continue
			}
			if _, ok := parseClock(window.StartTime); !ok {
				continue
			}
			if _, ok := parseClock(window.EndTime); !ok {
				continue
			}
			windowsSeen++

			for _, block := range models.TimeBlocks {
				overlap, ok := ComputeOverlap(window.StartTime, window.EndTime, block)
				if !ok {
					continue
				}
				capacity := BlockCapacity(overlap.Hours)

				booked, err := s.AppointmentRepo.CountActiveBookings(ctx, doc.ID, day, block.Name)
				if err != nil {
					failures++
					logger.Warn("urgent: booking count failed, skipping candidate",
						zap.String("doctorId", doc.ID), zap.String("block", block.Name), zap.Error(err))
					continue
				}
				if booked >= capacity {
					continue
				}

				slots = append(slots, models.AvailableSlot{
					Doctor:       doc,
					Date:         day,
					Block:        block,
					OverlapRange: overlap.Range,
					OverlapHours: overlap.Hours,
					BookedCount:  booked,
					Capacity:     capacity,
				})
			}
		}
	}
	return slots, failures, windowsSeen
}

// defaultAvailability is the last-resort schedule used when no doctor in the
// candidate pool has any stored availability: Monday to Friday, 09:00-17:00.
func defaultAvailability(_ context.Context, doctorID string, weekday int) (*models.AvailabilityWindow, error) {
	if weekday > 5 {
		return nil, nil
	}
	return &models.AvailabilityWindow{
		DoctorID:  doctorID,
		Weekday:   weekday,
		IsActive:  true,
		StartTime: "09:00",
		EndTime:   "17:00",
	}, nil
}

// isoWeekday maps time.Weekday onto ISO numbering, 1=Monday .. 7=Sunday.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
