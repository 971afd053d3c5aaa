package sessiongen

import (
	"errors"
	"time"
)

// ErrInvalidConfiguration the category has no training slot to generate from.
var ErrInvalidConfiguration = errors.New("no training location configured for this category")

// NextAvailableDay returns the earliest calendar date on or after start
// whose weekday matches one of slots, together with the matching slot.
// Slots sharing a weekday resolve to the first one in input order.
func NextAvailableDay(slots []Slot, start time.Time) (time.Time, Slot, error) {
	if len(slots) == 0 {
		return time.Time{}, Slot{}, ErrInvalidConfiguration
	}

	// weekday -> position of its first slot
	first := make(map[Weekday]int, len(slots))
	for i, s := range slots {
		if _, seen := first[s.Weekday]; !seen {
			first[s.Weekday] = i
		}
	}

	day := dateOf(start)
	// One week always contains every weekday; the outer bound only guards
	// slots whose weekday lies outside 0..6.
	for week := 0; week < 2; week++ {
		for offset := 0; offset < 7; offset++ {
			candidate := addDays(day, offset)
			if i, ok := first[WeekdayOf(candidate)]; ok {
				return candidate, slots[i], nil
			}
		}
		day = addDays(day, 7)
	}

	return time.Time{}, Slot{}, ErrInvalidConfiguration
}
