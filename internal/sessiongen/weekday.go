package sessiongen

import (
	"errors"
	"strings"
	"time"
)

// ErrUnknownWeekday is returned for a weekday name outside the canonical table.
var ErrUnknownWeekday = errors.New("unknown weekday name")

// Weekday Monday-first weekday index: Monday=0 … Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayNames canonical Italian names, indexed by Weekday.
var weekdayNames = [7]string{
	"Lunedì",
	"Martedì",
	"Mercoledì",
	"Giovedì",
	"Venerdì",
	"Sabato",
	"Domenica",
}

// String returns the canonical Italian name.
func (w Weekday) String() string {
	if !w.Valid() {
		return ""
	}
	return weekdayNames[w]
}

// Valid reports whether w is inside 0..6.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// Names returns the canonical weekday names in Monday-first order.
func Names() []string {
	out := make([]string, len(weekdayNames))
	copy(out, weekdayNames[:])
	return out
}

// WeekdayOf remaps time.Weekday (Sunday=0) onto the Monday-first index.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// IndexOfName looks a weekday name up in the canonical table.
// Returns -1 for names outside the table; callers treat that as a
// configuration defect.
func IndexOfName(name string) int {
	key := foldWeekday(name)
	for i, n := range weekdayNames {
		if foldWeekday(n) == key {
			return i
		}
	}
	return -1
}

// ParseWeekday is IndexOfName with an error instead of -1.
func ParseWeekday(name string) (Weekday, error) {
	idx := IndexOfName(name)
	if idx < 0 {
		return 0, ErrUnknownWeekday
	}
	return Weekday(idx), nil
}

// foldWeekday lowercases, trims and drops the trailing accent so that
// hand-typed "lunedi" matches "Lunedì".
func foldWeekday(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "ì", "i")
}
