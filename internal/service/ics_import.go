package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ── ICS fixture import ──────────────────────────────────────
//
// Federation and tournament organisers publish fixtures as iCalendar feeds.
// Each VEVENT becomes one Event; recurring rules are ignored since fixtures
// are single dated occurrences.
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize  = 5 * 1024 * 1024
	icsFetchTimeout = 30 * time.Second
)

var ErrICSInvalid = errors.New("invalid iCalendar content")

// parsedFixture one VEVENT reduced to what an Event stores.
type parsedFixture struct {
	UID         string
	Title       string
	Date        time.Time
	StartTime   *string
	Location    string
	Opponent    string
	Description string
}

// FetchICSContent downloads a feed; webcal:// is treated as https://.
func FetchICSContent(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch ics: %w", err)
	}
	client := &http.Client{Timeout: icsFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ics: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch ics: HTTP %d", resp.StatusCode)
	}
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// parseFixtures reads every VEVENT with a summary and a start. Times are
// converted to loc.
func parseFixtures(reader io.Reader, loc *time.Location) ([]parsedFixture, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrICSInvalid, err)
	}

	var out []parsedFixture
	for _, evt := range cal.Events() {
		fx, ok := parseFixture(evt, loc)
		if !ok {
			continue
		}
		out = append(out, fx)
	}
	return out, nil
}

func parseFixture(evt *ics.VEvent, loc *time.Location) (parsedFixture, bool) {
	summary := evt.GetProperty(ics.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return parsedFixture{}, false
	}
	start, allDay, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart, loc)
	if err != nil {
		return parsedFixture{}, false
	}

	fx := parsedFixture{
		UID:   propertyValue(evt, ics.ComponentPropertyUniqueId),
		Title: unescapeICS(strings.TrimSpace(summary.Value)),
		Date:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
	}
	if !allDay {
		clock := start.Format("15:04:05")
		fx.StartTime = &clock
	}
	if p := evt.GetProperty(ics.ComponentPropertyLocation); p != nil {
		fx.Location = unescapeICS(strings.TrimSpace(p.Value))
	}
	if p := evt.GetProperty(ics.ComponentPropertyDescription); p != nil {
		fx.Description = unescapeICS(p.Value)
	}
	fx.Opponent = opponentFromTitle(fx.Title)
	return fx, true
}

// opponentFromTitle picks the side after "vs"/"-" in "Brixia vs Rovato".
func opponentFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, sep := range []string{" vs. ", " vs ", " - "} {
		if i := strings.Index(lower, sep); i >= 0 {
			return strings.TrimSpace(title[i+len(sep):])
		}
	}
	return ""
}

func propertyValue(evt *ics.VEvent, name ics.ComponentProperty) string {
	if p := evt.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}

func unescapeICS(s string) string {
	r := strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)
	return r.Replace(s)
}

// parseICSDateTime reads a date or date-time property. Floating times use
// TZID when present, else loc. allDay is set for VALUE=DATE values.
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty, loc *time.Location) (time.Time, bool, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, false, fmt.Errorf("missing property %s", propName)
	}
	val := strings.TrimSpace(prop.Value)

	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	if t, err := time.Parse("20060102T150405Z", val); err == nil {
		return t.In(loc), false, nil
	}
	if t, err := time.Parse("20060102T150405", val); err == nil {
		zone := loc
		if tzid != "" {
			if tzLoc, err := time.LoadLocation(tzid); err == nil {
				zone = tzLoc
			}
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, zone).In(loc), false, nil
	}
	if t, err := time.Parse("20060102", val); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true, nil
	}

	return time.Time{}, false, fmt.Errorf("unparseable date %q", val)
}
