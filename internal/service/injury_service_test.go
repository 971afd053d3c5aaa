package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
)

func setupTestInjuryService() (*injuryService, *mockStore) {
	repo, st := newMockRepository()
	svc := NewInjuryService(repo, zap.NewNop()).(*injuryService)
	svc.now = func() time.Time { return time.Date(2026, 11, 20, 10, 0, 0, 0, time.UTC) }
	return svc, st
}

func TestInjuryService_Create(t *testing.T) {
	svc, st := setupTestInjuryService()
	cat := seedCategory(st, "U16")
	p := seedPlayer(st, cat.CategoryID, "Luca", "Rossi")

	resp, err := svc.Create(context.Background(), &dto.CreateInjuryRequest{
		PlayerID:       p.PlayerID,
		InjuryDate:     "2026-11-01",
		BodyPart:       "ankle",
		ExpectedReturn: "2026-11-15",
	}, "physio-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.Severity != model.SeverityMinor {
		t.Errorf("severity should default to minor, got %s", resp.Severity)
	}
	if !resp.IsActive || resp.PlayerName != "Rossi Luca" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestInjuryService_Create_Validation(t *testing.T) {
	svc, st := setupTestInjuryService()
	cat := seedCategory(st, "U16")
	p := seedPlayer(st, cat.CategoryID, "Luca", "Rossi")

	tests := []struct {
		name    string
		req     dto.CreateInjuryRequest
		wantErr error
	}{
		{"unknown player", dto.CreateInjuryRequest{PlayerID: "missing", InjuryDate: "2026-11-01", BodyPart: "knee"}, ErrPlayerNotFound},
		{"bad date", dto.CreateInjuryRequest{PlayerID: p.PlayerID, InjuryDate: "01/11/2026", BodyPart: "knee"}, ErrInvalidDate},
		{"return before injury", dto.CreateInjuryRequest{PlayerID: p.PlayerID, InjuryDate: "2026-11-01", BodyPart: "knee", ExpectedReturn: "2026-10-01"}, ErrReturnBeforeInjury},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req, "physio-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestInjuryService_MarkReturned(t *testing.T) {
	svc, st := setupTestInjuryService()
	cat := seedCategory(st, "U16")
	p := seedPlayer(st, cat.CategoryID, "Luca", "Rossi")

	created, _ := svc.Create(context.Background(), &dto.CreateInjuryRequest{
		PlayerID: p.PlayerID, InjuryDate: "2026-11-01", BodyPart: "shoulder", Severity: model.SeverityModerate,
	}, "physio-1")

	_, err := svc.MarkReturned(context.Background(), created.ID, &dto.MarkReturnedRequest{ReturnedAt: "2026-10-20"}, "physio-1")
	if !errors.Is(err, ErrReturnBeforeInjury) {
		t.Errorf("want ErrReturnBeforeInjury, got %v", err)
	}

	resp, err := svc.MarkReturned(context.Background(), created.ID, &dto.MarkReturnedRequest{}, "physio-1")
	if err != nil {
		t.Fatalf("mark returned: %v", err)
	}
	if resp.IsActive || resp.ReturnedAt != "2026-11-20" {
		t.Errorf("returned_at should default to today: %+v", resp)
	}

	_, err = svc.MarkReturned(context.Background(), created.ID, &dto.MarkReturnedRequest{}, "physio-1")
	if !errors.Is(err, ErrInjuryAlreadyClosed) {
		t.Errorf("want ErrInjuryAlreadyClosed, got %v", err)
	}
}

func TestInjuryService_List_ActiveOnly(t *testing.T) {
	svc, st := setupTestInjuryService()
	cat := seedCategory(st, "U16")
	p := seedPlayer(st, cat.CategoryID, "Luca", "Rossi")
	ctx := context.Background()

	old, _ := svc.Create(ctx, &dto.CreateInjuryRequest{PlayerID: p.PlayerID, InjuryDate: "2026-09-01", BodyPart: "wrist"}, "physio-1")
	_, _ = svc.Create(ctx, &dto.CreateInjuryRequest{PlayerID: p.PlayerID, InjuryDate: "2026-11-01", BodyPart: "ankle"}, "physio-1")
	if _, err := svc.MarkReturned(ctx, old.ID, &dto.MarkReturnedRequest{ReturnedAt: "2026-09-20"}, "physio-1"); err != nil {
		t.Fatalf("mark returned: %v", err)
	}

	all, _ := svc.List(ctx, &dto.InjuryListRequest{CategoryID: cat.CategoryID})
	if len(all) != 2 {
		t.Errorf("want 2 injuries, got %d", len(all))
	}
	active, _ := svc.List(ctx, &dto.InjuryListRequest{PlayerID: p.PlayerID, ActiveOnly: true})
	if len(active) != 1 || active[0].BodyPart != "ankle" {
		t.Errorf("active filter wrong: %+v", active)
	}
}

func TestInjuryService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestInjuryService()

	sev := model.SeveritySevere
	_, err := svc.Update(context.Background(), "missing", &dto.UpdateInjuryRequest{Severity: &sev}, "physio-1")
	if !errors.Is(err, ErrInjuryNotFound) {
		t.Errorf("want ErrInjuryNotFound, got %v", err)
	}
}
