package urgent

// patientsPerHour is the fixed throughput used to size a block's capacity.
// Business parameter, not derived.
const patientsPerHour = 4

// BlockCapacity converts overlap hours into a patient capacity.
func BlockCapacity(hours int) int {
	return hours * patientsPerHour
}
