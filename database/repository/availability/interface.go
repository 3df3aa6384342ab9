package availabilityRepo

import (
	"context"

	"medibook/models"
)

// AvailabilityRepository provides access to doctors' weekly availability
// windows.
type AvailabilityRepository interface {
	// GetActiveWindow returns the active window for (doctorID, weekday),
	// or nil when the doctor has none for that weekday. When multiple
	// active rows exist the first match wins; rows are never merged.
	GetActiveWindow(ctx context.Context, doctorID string, weekday int) (*models.AvailabilityWindow, error)
	UpsertWindow(ctx context.Context, window *models.AvailabilityWindow) error
	ListWindows(ctx context.Context, doctorID string) ([]models.AvailabilityWindow, error)
}
