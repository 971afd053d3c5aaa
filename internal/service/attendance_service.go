package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
)

var (
	ErrPlayerNotInCategory = errors.New("player does not belong to the session category")
	ErrDuplicatePlayer     = errors.New("player listed more than once in the register")
)

// AttendanceService session registers and per-player statistics
type AttendanceService interface {
	Record(ctx context.Context, sessionID string, req *dto.RecordAttendanceRequest, callerID string) ([]dto.AttendanceResponse, error)
	ListBySession(ctx context.Context, sessionID string) ([]dto.AttendanceResponse, error)
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error)
	PlayerSummary(ctx context.Context, playerID string, req *dto.AttendanceSummaryRequest) (*dto.AttendanceSummaryResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── Record ──────────────────────

// Record upserts a register. Every player must be on the session's roster.
func (s *attendanceService) Record(ctx context.Context, sessionID string, req *dto.RecordAttendanceRequest, callerID string) ([]dto.AttendanceResponse, error) {
	sess, err := s.repo.Session.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	roster, err := s.repo.Player.ListByCategory(ctx, sess.CategoryID)
	if err != nil {
		s.logger.Error("load roster failed", zap.String("category_id", sess.CategoryID), zap.Error(err))
		return nil, err
	}
	onRoster := make(map[string]bool, len(roster))
	for _, p := range roster {
		onRoster[p.PlayerID] = true
	}

	seen := make(map[string]bool, len(req.Records))
	rows := make([]model.Attendance, 0, len(req.Records))
	for _, rec := range req.Records {
		if !onRoster[rec.PlayerID] {
			return nil, ErrPlayerNotInCategory
		}
		if seen[rec.PlayerID] {
			return nil, ErrDuplicatePlayer
		}
		seen[rec.PlayerID] = true

		row := model.Attendance{
			SessionID: sessionID,
			PlayerID:  rec.PlayerID,
			Status:    rec.Status,
			Note:      strings.TrimSpace(rec.Note),
		}
		row.CreatedBy = &callerID
		row.UpdatedBy = &callerID
		rows = append(rows, row)
	}

	if err := s.repo.Attendance.Upsert(ctx, rows); err != nil {
		s.logger.Error("record attendance failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("attendance recorded", zap.String("session_id", sessionID), zap.Int("rows", len(rows)))
	return s.ListBySession(ctx, sessionID)
}

// ────────────────────── ListBySession ──────────────────────

func (s *attendanceService) ListBySession(ctx context.Context, sessionID string) ([]dto.AttendanceResponse, error) {
	rows, err := s.repo.Attendance.ListBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	sortAttendance(rows, "player", "asc")
	return toAttendanceResponses(rows), nil
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{
		PlayerID:   req.PlayerID,
		CategoryID: req.CategoryID,
		Status:     req.Status,
		From:       from,
		To:         to,
	})
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	sortAttendance(rows, req.Sort, req.Order)
	return toAttendanceResponses(rows), nil
}

// ────────────────────── PlayerSummary ──────────────────────

func (s *attendanceService) PlayerSummary(ctx context.Context, playerID string, req *dto.AttendanceSummaryRequest) (*dto.AttendanceSummaryResponse, error) {
	player, err := s.repo.Player.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{PlayerID: playerID, From: from, To: to})
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("player_id", playerID), zap.Error(err))
		return nil, err
	}

	summary := summarizeAttendance(rows)
	summary.PlayerID = player.PlayerID
	summary.PlayerName = player.FullName()
	return summary, nil
}

// ────────────────────── helpers ──────────────────────

// summarizeAttendance counts statuses; the rate is present over all rows.
func summarizeAttendance(rows []model.Attendance) *dto.AttendanceSummaryResponse {
	out := &dto.AttendanceSummaryResponse{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case model.AttendancePresent:
			out.Present++
		case model.AttendanceAbsent:
			out.Absent++
		case model.AttendanceInjured:
			out.Injured++
		case model.AttendanceExcused:
			out.Excused++
		}
	}
	if out.Total > 0 {
		out.PresenceRate = float64(out.Present) / float64(out.Total)
	}
	return out
}

// sortAttendance orders rows by session date (default) or player name.
// Ties keep a stable secondary order so repeated calls agree.
func sortAttendance(rows []model.Attendance, by, order string) {
	desc := order == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less, greater bool
		switch by {
		case "player":
			na, nb := playerSortKey(a.Player), playerSortKey(b.Player)
			less, greater = na < nb, na > nb
			if !less && !greater {
				da, db := sessionDateOf(a), sessionDateOf(b)
				less, greater = da.Before(db), da.After(db)
			}
		default:
			da, db := sessionDateOf(a), sessionDateOf(b)
			less, greater = da.Before(db), da.After(db)
			if !less && !greater {
				na, nb := playerSortKey(a.Player), playerSortKey(b.Player)
				less, greater = na < nb, na > nb
			}
		}
		if desc {
			return greater
		}
		return less
	})
}

func playerSortKey(p *model.Player) string {
	if p == nil {
		return ""
	}
	return strings.ToLower(p.LastName + " " + p.FirstName)
}

func sessionDateOf(a model.Attendance) time.Time {
	if a.Session == nil {
		return time.Time{}
	}
	return time.Time(a.Session.SessionDate)
}

func toAttendanceResponses(rows []model.Attendance) []dto.AttendanceResponse {
	result := make([]dto.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.AttendanceResponse{
			ID:        r.AttendanceID,
			SessionID: r.SessionID,
			PlayerID:  r.PlayerID,
			Status:    r.Status,
			Note:      r.Note,
		}
		if r.Session != nil {
			resp.SessionDate = formatDate(r.Session.SessionDate)
		}
		if r.Player != nil {
			resp.PlayerName = r.Player.FullName()
		}
		result = append(result, resp)
	}
	return result
}
