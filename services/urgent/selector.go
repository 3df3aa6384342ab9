package urgent

import (
	"sort"

	"medibook/models"
)

// pickBestSlot totally orders the candidates ascending by calendar date,
// then block start hour, then current load, and returns the minimum.
// The sort is stable, so candidates tied on all three keys resolve by
// input order and re-running over the same list always picks the same slot.
func pickBestSlot(candidates []models.AvailableSlot) (models.AvailableSlot, bool) {
	if len(candidates) == 0 {
		return models.AvailableSlot{}, false
	}

	ordered := make([]models.AvailableSlot, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Block.StartHour != b.Block.StartHour {
			return a.Block.StartHour < b.Block.StartHour
		}
		return a.BookedCount < b.BookedCount
	})

	return ordered[0], true
}
