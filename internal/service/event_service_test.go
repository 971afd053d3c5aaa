package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
)

const fixtureFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//FIR//Calendario//IT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:fx-1@fir.it\r\n" +
	"DTSTAMP:20261001T000000Z\r\n" +
	"DTSTART;TZID=Europe/Rome:20261108T143000\r\n" +
	"SUMMARY:Brixia vs Rugby Rovato\r\n" +
	"LOCATION:Campo Brescia\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:fx-2@fir.it\r\n" +
	"DTSTAMP:20261001T000000Z\r\n" +
	"DTSTART:20261115T133000Z\r\n" +
	"SUMMARY:Rugby Lumezzane - Brixia\r\n" +
	"LOCATION:Lumezzane\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:fx-3@fir.it\r\n" +
	"DTSTAMP:20261001T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20261129\r\n" +
	"SUMMARY:Torneo di Natale\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:fx-4@fir.it\r\n" +
	"DTSTAMP:20261001T000000Z\r\n" +
	"DTSTART:20261201T180000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func setupTestEventService() (EventService, *mockStore) {
	repo, st := newMockRepository()
	cfg := testConfig()
	return NewEventService(&cfg.Club, repo, zap.NewNop()), st
}

func TestEventService_Create_Defaults(t *testing.T) {
	svc, st := setupTestEventService()
	cat := seedCategory(st, "U16")

	resp, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		CategoryID: cat.CategoryID,
		Title:      "Riunione genitori",
		EventDate:  "2026-11-12",
		StartTime:  "20:30",
		Location:   "club house brescia",
	}, "admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.EventType != model.EventOther || resp.Location != "Brescia" || resp.StartTime != "20:30" {
		t.Errorf("unexpected event: %+v", resp)
	}

	_, err = svc.Create(context.Background(), &dto.CreateEventRequest{Title: "x", EventDate: "2026-11-12", StartTime: "25:00"}, "admin-1")
	if !errors.Is(err, ErrInvalidTime) {
		t.Errorf("want ErrInvalidTime, got %v", err)
	}
}

func TestEventService_ImportICS(t *testing.T) {
	svc, st := setupTestEventService()
	cat := seedCategory(st, "U16")
	req := &dto.ImportEventsRequest{CategoryID: cat.CategoryID}

	resp, err := svc.ImportICS(context.Background(), req, strings.NewReader(fixtureFeed), "admin-1")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	// the VEVENT without a summary is dropped
	if resp.Parsed != 3 || resp.Imported != 3 || resp.Skipped != 0 {
		t.Fatalf("parsed/imported/skipped = %d/%d/%d", resp.Parsed, resp.Imported, resp.Skipped)
	}

	byTitle := make(map[string]dto.EventResponse)
	for _, e := range resp.Events {
		byTitle[e.Title] = e
	}

	home := byTitle["Brixia vs Rugby Rovato"]
	if home.EventDate != "2026-11-08" || home.StartTime != "14:30" || home.Location != "Brescia" || home.AwayPlace != nil {
		t.Errorf("home fixture: %+v", home)
	}
	if home.Opponent != "Rugby Rovato" || home.EventType != model.EventMatch {
		t.Errorf("home fixture opponent/type: %+v", home)
	}

	// 13:30 UTC is 14:30 in Brescia
	away := byTitle["Rugby Lumezzane - Brixia"]
	if away.StartTime != "14:30" || away.AwayPlace == nil || *away.AwayPlace != "Lumezzane" {
		t.Errorf("away fixture: %+v", away)
	}

	allDay := byTitle["Torneo di Natale"]
	if allDay.EventDate != "2026-11-29" || allDay.StartTime != "" {
		t.Errorf("all-day fixture: %+v", allDay)
	}

	again, err := svc.ImportICS(context.Background(), req, strings.NewReader(fixtureFeed), "admin-1")
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if again.Imported != 0 || again.Skipped != 3 {
		t.Errorf("reimport should skip everything: %+v", again)
	}
}

func TestEventService_ImportICS_Invalid(t *testing.T) {
	svc, st := setupTestEventService()
	cat := seedCategory(st, "U16")

	_, err := svc.ImportICS(context.Background(), &dto.ImportEventsRequest{CategoryID: "missing"}, strings.NewReader(fixtureFeed), "admin-1")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("want ErrCategoryNotFound, got %v", err)
	}

	_, err = svc.ImportICS(context.Background(), &dto.ImportEventsRequest{CategoryID: cat.CategoryID}, strings.NewReader("not a calendar"), "admin-1")
	if !errors.Is(err, ErrICSInvalid) {
		t.Errorf("want ErrICSInvalid, got %v", err)
	}
}

func TestOpponentFromTitle(t *testing.T) {
	tests := map[string]string{
		"Brixia vs Rovato":      "Rovato",
		"Brixia VS. Rovato":     "Rovato",
		"Lumezzane - Brixia":    "Brixia",
		"Allenamento congiunto": "",
	}
	for title, want := range tests {
		if got := opponentFromTitle(title); got != want {
			t.Errorf("opponentFromTitle(%q) = %q, want %q", title, got, want)
		}
	}
}
