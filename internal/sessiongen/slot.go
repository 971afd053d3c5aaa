package sessiongen

import "time"

// DateLayout ISO calendar date used for session_date.
const DateLayout = "2006-01-02"

// Slot one configured weekly training occurrence of a category.
// StartTime/EndTime are carried through untouched ("HH:MM[:SS]").
type Slot struct {
	Location  string
	Weekday   Weekday
	StartTime string
	EndTime   string
}

// Draft a dated, not yet persisted training session.
type Draft struct {
	CategoryID  string
	SessionDate time.Time
	Location    string
	AwayPlace   *string
	StartTime   string
	EndTime     string
}

// Date renders SessionDate as YYYY-MM-DD.
func (d Draft) Date() string {
	return d.SessionDate.Format(DateLayout)
}

// dateOf truncates t to midnight of its calendar day in t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// addDays moves by calendar days; AddDate keeps midnight across DST changes.
func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
