package models

// TimeBlock is one of the fixed partitions of the day used for appointment
// scheduling. Hour bounds are on a 24h clock and half-open: [StartHour, EndHour).
type TimeBlock struct {
	Name      string `json:"name"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// TimeBlocks lists the four day partitions in chronological order.
var TimeBlocks = []TimeBlock{
	{Name: "Morning", StartHour: 6, EndHour: 12},
	{Name: "Afternoon", StartHour: 12, EndHour: 17},
	{Name: "Evening", StartHour: 17, EndHour: 21},
	{Name: "Night", StartHour: 21, EndHour: 24},
}

// TimeBlockByName returns the catalog entry for the given block name.
func TimeBlockByName(name string) (TimeBlock, bool) {
	for _, b := range TimeBlocks {
		if b.Name == name {
			return b, true
		}
	}
	return TimeBlock{}, false
}
