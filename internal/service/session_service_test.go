package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"brixia-rugby/backend/internal/dto"
)

// ── helpers ──

func setupTestSessionService(t *testing.T) (*sessionService, *mockStore) {
	t.Helper()
	repo, st := newMockRepository()
	cfg := testConfig()
	svc := NewSessionService(&cfg.Club, repo, zap.NewNop()).(*sessionService)

	// Tuesday 20 October 2026, morning in Brescia
	fixed := time.Date(2026, 10, 20, 8, 0, 0, 0, svc.loc)
	svc.now = func() time.Time { return fixed }
	return svc, st
}

func seedTwoSlots(st *mockStore, categoryID string) {
	seedSlot(st, categoryID, "Campo Gussago", "Martedì", "18:30:00", "20:00:00")
	seedSlot(st, categoryID, "Rovato", "Giovedì", "18:30:00", "20:00:00")
}

// ── Generate ──

func TestSessionService_Generate_Weekly(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedTwoSlots(st, cat.CategoryID)

	resp, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{
		CategoryID:    cat.CategoryID,
		Mode:          "weekly",
		ReferenceDate: "2026-10-20",
	}, "coach-1")
	if err != nil {
		t.Fatalf("generate should succeed: %v", err)
	}
	if resp.Generated != 2 || resp.Inserted != 2 || resp.Skipped != 0 {
		t.Fatalf("generated/inserted/skipped = %d/%d/%d, want 2/2/0", resp.Generated, resp.Inserted, resp.Skipped)
	}

	// slot order first; the Tuesday slot skips the reference day itself
	first, second := resp.Sessions[0], resp.Sessions[1]
	if first.SessionDate != "2026-10-27" || first.Location != "Gussago" || first.AwayPlace != nil {
		t.Errorf("unexpected first draft: %+v", first)
	}
	if second.SessionDate != "2026-10-22" || second.Location != "Rovato" {
		t.Errorf("unexpected second draft: %+v", second)
	}
	if second.AwayPlace == nil || *second.AwayPlace != "Rovato" {
		t.Errorf("away location should set away_place, got %v", second.AwayPlace)
	}
	if first.StartTime != "18:30" || first.EndTime != "20:00" {
		t.Errorf("times = %s-%s, want 18:30-20:00", first.StartTime, first.EndTime)
	}
	if st.sessions.bulkCalls != 1 {
		t.Errorf("want one bulk insert, got %d", st.sessions.bulkCalls)
	}
	if len(st.sessions.sessions) != 2 {
		t.Errorf("want 2 stored sessions, got %d", len(st.sessions.sessions))
	}
}

func TestSessionService_Generate_RerunSkipsExisting(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedTwoSlots(st, cat.CategoryID)

	req := &dto.GenerateSessionsRequest{CategoryID: cat.CategoryID, Mode: "weekly", ReferenceDate: "2026-10-20"}
	if _, err := svc.Generate(context.Background(), req, "coach-1"); err != nil {
		t.Fatalf("first run: %v", err)
	}

	resp, err := svc.Generate(context.Background(), req, "coach-1")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if resp.Inserted != 0 || resp.Skipped != 2 {
		t.Errorf("inserted/skipped = %d/%d, want 0/2", resp.Inserted, resp.Skipped)
	}
	if len(st.sessions.sessions) != 2 {
		t.Errorf("rerun must not duplicate sessions, have %d", len(st.sessions.sessions))
	}
}

func TestSessionService_Generate_Modes(t *testing.T) {
	tests := []struct {
		mode      string
		wantCount int
		wantFirst string
	}{
		{"single", 1, "2026-10-20"},
		{"weekly", 2, "2026-10-27"},
		{"biweekly", 4, "2026-10-27"},
		{"monthly", 8, "2026-10-27"},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			svc, st := setupTestSessionService(t)
			cat := seedCategory(st, "U18")
			seedTwoSlots(st, cat.CategoryID)

			resp, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{
				CategoryID:    cat.CategoryID,
				Mode:          tt.mode,
				ReferenceDate: "2026-10-20",
			}, "coach-1")
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if resp.Generated != tt.wantCount {
				t.Errorf("generated = %d, want %d", resp.Generated, tt.wantCount)
			}
			if resp.Sessions[0].SessionDate != tt.wantFirst {
				t.Errorf("first date = %s, want %s", resp.Sessions[0].SessionDate, tt.wantFirst)
			}
		})
	}
}

func TestSessionService_Generate_DefaultsFromClubAndClock(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U14")
	seedTwoSlots(st, cat.CategoryID)

	resp, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{CategoryID: cat.CategoryID}, "coach-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Mode != "weekly" {
		t.Errorf("mode = %s, want club default weekly", resp.Mode)
	}
	if resp.Sessions[1].SessionDate != "2026-10-22" {
		t.Errorf("reference should default to the clock, got %s", resp.Sessions[1].SessionDate)
	}
}

func TestSessionService_Generate_NoTrainingLocation(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")

	_, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{CategoryID: cat.CategoryID, Mode: "weekly"}, "coach-1")
	if !errors.Is(err, ErrNoTrainingLocation) {
		t.Errorf("want ErrNoTrainingLocation, got %v", err)
	}
	if st.sessions.bulkCalls != 0 {
		t.Error("nothing should be written")
	}
}

func TestSessionService_Generate_InvalidMode(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedTwoSlots(st, cat.CategoryID)

	_, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{CategoryID: cat.CategoryID, Mode: "daily"}, "coach-1")
	if !errors.Is(err, ErrInvalidMode) {
		t.Errorf("want ErrInvalidMode, got %v", err)
	}
	if st.sessions.bulkCalls != 0 {
		t.Error("nothing should be written")
	}
}

func TestSessionService_Generate_BadStoredWeekday(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedSlot(st, cat.CategoryID, "Brescia", "Funday", "18:30:00", "20:00:00")

	_, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{CategoryID: cat.CategoryID, Mode: "weekly"}, "coach-1")
	if !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("want ErrInvalidWeekday, got %v", err)
	}
}

func TestSessionService_Generate_UnknownCategory(t *testing.T) {
	svc, _ := setupTestSessionService(t)

	_, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{CategoryID: "missing", Mode: "weekly"}, "coach-1")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("want ErrCategoryNotFound, got %v", err)
	}
}

func TestSessionService_Generate_StoreFailure(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedTwoSlots(st, cat.CategoryID)
	boom := errors.New("connection reset")
	st.sessions.bulkErr = boom

	_, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{CategoryID: cat.CategoryID, Mode: "weekly"}, "coach-1")
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped store error, got %v", err)
	}
}

// ── Create / Update ──

func TestSessionService_Create_NormalizesLocation(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")

	home, err := svc.Create(context.Background(), &dto.CreateSessionRequest{
		CategoryID:  cat.CategoryID,
		SessionDate: "2026-11-03",
		Location:    "campo brescia",
		StartTime:   "18:30",
		EndTime:     "20:00",
	}, "coach-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if home.Location != "Brescia" || home.AwayPlace != nil {
		t.Errorf("home session: location=%s away=%v", home.Location, home.AwayPlace)
	}
	if home.Weekday != "Martedì" {
		t.Errorf("weekday = %s, want Martedì", home.Weekday)
	}

	away, err := svc.Create(context.Background(), &dto.CreateSessionRequest{
		CategoryID:  cat.CategoryID,
		SessionDate: "2026-11-05",
		Location:    "Rovato",
	}, "coach-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if away.AwayPlace == nil || *away.AwayPlace != "Rovato" {
		t.Errorf("away session should carry away_place, got %v", away.AwayPlace)
	}
}

func TestSessionService_Create_InvalidTimeRange(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")

	_, err := svc.Create(context.Background(), &dto.CreateSessionRequest{
		CategoryID:  cat.CategoryID,
		SessionDate: "2026-11-03",
		Location:    "Brescia",
		StartTime:   "20:00",
		EndTime:     "18:30",
	}, "coach-1")
	if !errors.Is(err, ErrInvalidTimeRange) {
		t.Errorf("want ErrInvalidTimeRange, got %v", err)
	}
}

func TestSessionService_Update_VersionConflict(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	sess := seedSession(st, cat.CategoryID, "2026-11-03", "Brescia")

	notes := "bring tackle bags"
	resp, err := svc.Update(context.Background(), sess.SessionID, &dto.UpdateSessionRequest{Notes: &notes, Version: 1}, "coach-1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if resp.Version != 2 || resp.Notes != notes {
		t.Errorf("version=%d notes=%q", resp.Version, resp.Notes)
	}

	_, err = svc.Update(context.Background(), sess.SessionID, &dto.UpdateSessionRequest{Notes: &notes, Version: 1}, "coach-1")
	if !errors.Is(err, ErrVersionConflict) {
		t.Errorf("stale version: want ErrVersionConflict, got %v", err)
	}
}

func TestSessionService_List_DateRange(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedSession(st, cat.CategoryID, "2026-11-03", "Brescia")
	seedSession(st, cat.CategoryID, "2026-11-10", "Brescia")
	seedSession(st, cat.CategoryID, "2026-11-17", "Brescia")

	list, total, err := svc.List(context.Background(), &dto.SessionListRequest{
		CategoryID: cat.CategoryID,
		From:       "2026-11-04",
		To:         "2026-11-17",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || list[0].SessionDate != "2026-11-10" {
		t.Errorf("total=%d first=%v", total, list)
	}

	_, _, err = svc.List(context.Background(), &dto.SessionListRequest{From: "2026-11-20", To: "2026-11-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("want ErrInvalidDateRange, got %v", err)
	}
}

func TestSessionService_Update_RecomputesAwayPlace(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")

	created, err := svc.Create(context.Background(), &dto.CreateSessionRequest{
		CategoryID:  cat.CategoryID,
		SessionDate: "2026-11-05",
		Location:    "Rovato",
	}, "coach-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	home := "Campo Brescia"
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateSessionRequest{Location: &home, Version: 1}, "coach-1")
	if err != nil {
		t.Fatalf("move home: %v", err)
	}
	if resp.Location != "Brescia" || resp.AwayPlace != nil {
		t.Errorf("home session: location=%s away=%v", resp.Location, resp.AwayPlace)
	}

	away := "Chiari"
	resp, err = svc.Update(context.Background(), created.ID, &dto.UpdateSessionRequest{Location: &away, Version: 2}, "coach-1")
	if err != nil {
		t.Fatalf("move away: %v", err)
	}
	if resp.AwayPlace == nil || *resp.AwayPlace != "Chiari" {
		t.Errorf("away_place should follow the new location, got %v", resp.AwayPlace)
	}

	venue := "Stadio Comunale Chiari"
	resp, err = svc.Update(context.Background(), created.ID, &dto.UpdateSessionRequest{Location: &away, AwayPlace: &venue, Version: 3}, "coach-1")
	if err != nil {
		t.Fatalf("explicit away_place: %v", err)
	}
	if resp.AwayPlace == nil || *resp.AwayPlace != venue {
		t.Errorf("explicit away_place should win, got %v", resp.AwayPlace)
	}
}

func TestSessionService_Create_SlotTaken(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedTwoSlots(st, cat.CategoryID)

	if _, err := svc.Generate(context.Background(), &dto.GenerateSessionsRequest{
		CategoryID: cat.CategoryID, Mode: "weekly", ReferenceDate: "2026-10-20",
	}, "coach-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	// generation already filled Thursday 22 October at Rovato
	_, err := svc.Create(context.Background(), &dto.CreateSessionRequest{
		CategoryID:  cat.CategoryID,
		SessionDate: "2026-10-22",
		Location:    "Rovato",
	}, "coach-1")
	if !errors.Is(err, ErrSessionExists) {
		t.Errorf("want ErrSessionExists, got %v", err)
	}
	if len(st.sessions.sessions) != 2 {
		t.Errorf("nothing should be written, have %d sessions", len(st.sessions.sessions))
	}
}

func TestSessionService_Update_SlotTaken(t *testing.T) {
	svc, st := setupTestSessionService(t)
	cat := seedCategory(st, "U16")
	seedSession(st, cat.CategoryID, "2026-11-03", "Brescia")
	moving := seedSession(st, cat.CategoryID, "2026-11-10", "Brescia")

	taken := "2026-11-03"
	_, err := svc.Update(context.Background(), moving.SessionID, &dto.UpdateSessionRequest{SessionDate: &taken, Version: 1}, "coach-1")
	if !errors.Is(err, ErrSessionExists) {
		t.Errorf("want ErrSessionExists, got %v", err)
	}
	if got := time.Time(st.sessions.sessions[moving.SessionID].SessionDate).Format("2006-01-02"); got != "2026-11-10" {
		t.Errorf("stored date changed to %s", got)
	}

	// re-saving its own slot is fine
	same := "Brescia"
	if _, err := svc.Update(context.Background(), moving.SessionID, &dto.UpdateSessionRequest{Location: &same, Version: 1}, "coach-1"); err != nil {
		t.Errorf("keeping own slot: %v", err)
	}
}
