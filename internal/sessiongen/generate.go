package sessiongen

import (
	"errors"
	"time"
)

// ErrUnknownMode generation mode outside single/weekly/biweekly/monthly.
var ErrUnknownMode = errors.New("unknown generation mode")

// Mode requested generation strategy.
type Mode string

const (
	ModeSingle   Mode = "single"
	ModeWeekly   Mode = "weekly"
	ModeBiweekly Mode = "biweekly"
	ModeMonthly  Mode = "monthly"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeSingle, ModeWeekly, ModeBiweekly, ModeMonthly:
		return m, nil
	}
	return "", ErrUnknownMode
}

// Weeks window length of a multi-week mode; 0 for single and unknown modes.
func (m Mode) Weeks() int {
	switch m {
	case ModeWeekly:
		return 1
	case ModeBiweekly:
		return 2
	case ModeMonthly:
		return 4
	}
	return 0
}

// Request one generation action for a category.
type Request struct {
	CategoryID    string
	Mode          Mode
	ReferenceDate time.Time
}

// Generate turns slots into session drafts for req. It is pure: identical
// inputs give identical output and slots is never modified.
func Generate(req Request, slots []Slot) ([]Draft, error) {
	if len(slots) == 0 {
		return nil, ErrInvalidConfiguration
	}

	switch req.Mode {
	case ModeSingle:
		date, slot, err := NextAvailableDay(slots, req.ReferenceDate)
		if err != nil {
			return nil, err
		}
		return []Draft{{
			CategoryID:  req.CategoryID,
			SessionDate: date,
			Location:    NormalizeLocation(slot.Location),
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
		}}, nil

	case ModeWeekly, ModeBiweekly, ModeMonthly:
		drafts := Expand(req.CategoryID, slots, req.Mode.Weeks(), req.ReferenceDate)
		for i := range drafts {
			loc := NormalizeLocation(drafts[i].Location)
			drafts[i].Location = loc
			if !IsHomeLocation(loc) {
				away := loc
				drafts[i].AwayPlace = &away
			}
		}
		return drafts, nil
	}

	return nil, ErrUnknownMode
}
