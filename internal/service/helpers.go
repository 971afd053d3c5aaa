package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05Z"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
	ErrInvalidDateRange = errors.New("from must not be after to")
)

// parseDate parses YYYY-MM-DD into a UTC midnight date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// parseOptionalDate nil for an empty string.
func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDateRange parses optional inclusive bounds and checks their order.
func parseDateRange(from, to string) (*time.Time, *time.Time, error) {
	f, err := parseOptionalDate(from)
	if err != nil {
		return nil, nil, err
	}
	t, err := parseOptionalDate(to)
	if err != nil {
		return nil, nil, err
	}
	if f != nil && t != nil && f.After(*t) {
		return nil, nil, ErrInvalidDateRange
	}
	return f, t, nil
}

// toDate drops the clock and zone, keeping the calendar day.
func toDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func formatOptionalDate(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return formatDate(*d)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func parseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", ErrInvalidTime
}

// parseOptionalClock nil for an empty string.
func parseOptionalClock(s string) (*string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	c, err := parseClock(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// formatClock trims a TIME column value ("18:30:00") to HH:MM.
func formatClock(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

func formatOptionalClock(s *string) string {
	if s == nil {
		return ""
	}
	return formatClock(*s)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
