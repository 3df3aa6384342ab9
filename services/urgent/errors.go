package urgent

import "errors"

var (
	// ErrNoSlots means the 7-day sweep completed but produced no viable
	// candidate. This is a legitimate empty result, not a data error.
	ErrNoSlots = errors.New("no appointment slots available in the next 7 days")

	// ErrDataAccess means availability or booking counts could not be read.
	ErrDataAccess = errors.New("could not determine doctor availability, please try again")
)
