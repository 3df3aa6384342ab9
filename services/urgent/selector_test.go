package urgent

import (
	"testing"
	"time"

	"medibook/models"
)

func slotOn(day time.Time, blockName string, booked int, doctorID string) models.AvailableSlot {
	return models.AvailableSlot{
		Doctor:      models.Doctor{ID: doctorID},
		Date:        day,
		Block:       block(blockName),
		BookedCount: booked,
		Capacity:    booked + 1,
	}
}

func TestPickBestSlot(t *testing.T) {
	day0 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	day1 := day0.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		candidates []models.AvailableSlot
		wantDoctor string
	}{
		{
			name: "earlier date wins over lighter load",
			candidates: []models.AvailableSlot{
				slotOn(day1, "Morning", 0, "late"),
				slotOn(day0, "Night", 10, "early"),
			},
			wantDoctor: "early",
		},
		{
			name: "earlier block wins on equal dates",
			candidates: []models.AvailableSlot{
				slotOn(day0, "Evening", 0, "evening"),
				slotOn(day0, "Morning", 11, "morning"),
				slotOn(day0, "Afternoon", 1, "afternoon"),
			},
			wantDoctor: "morning",
		},
		{
			name: "lighter load wins on equal date and block",
			candidates: []models.AvailableSlot{
				slotOn(day0, "Morning", 3, "busy"),
				slotOn(day0, "Morning", 1, "quiet"),
			},
			wantDoctor: "quiet",
		},
		{
			name: "full tie resolves by input order",
			candidates: []models.AvailableSlot{
				slotOn(day0, "Morning", 2, "first"),
				slotOn(day0, "Morning", 2, "second"),
			},
			wantDoctor: "first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := pickBestSlot(tt.candidates)
			if !ok {
				t.Fatal("expected a slot")
			}
			if best.Doctor.ID != tt.wantDoctor {
				t.Errorf("picked %s, want %s", best.Doctor.ID, tt.wantDoctor)
			}
		})
	}
}

func TestPickBestSlotEmpty(t *testing.T) {
	if _, ok := pickBestSlot(nil); ok {
		t.Fatal("expected no slot from empty candidates")
	}
}

func TestPickBestSlotDeterministic(t *testing.T) {
	day0 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	candidates := []models.AvailableSlot{
		slotOn(day0, "Afternoon", 2, "a"),
		slotOn(day0, "Morning", 5, "b"),
		slotOn(day0.AddDate(0, 0, 2), "Morning", 0, "c"),
		slotOn(day0, "Morning", 5, "d"),
	}

	first, _ := pickBestSlot(candidates)
	for i := 0; i < 10; i++ {
		again, _ := pickBestSlot(candidates)
		if again.Doctor.ID != first.Doctor.ID || !again.Date.Equal(first.Date) || again.Block.Name != first.Block.Name {
			t.Fatalf("run %d picked a different slot: %s vs %s", i, again.Doctor.ID, first.Doctor.ID)
		}
	}
}
