package schedule

import "sort"

// Slot is one discrete bookable opening for a professional on one date.
type Slot struct {
	ID              int64  `json:"id"`
	Time            string `json:"time"` // "15:04"
	DurationMinutes int    `json:"duration_minutes"`
}

// SortSlots orders a day index by start time. The upstream service usually
// returns slots ordered already; ordering here keeps the contract local.
func SortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})
}

func FindSlot(slots []Slot, id int64) (Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}
