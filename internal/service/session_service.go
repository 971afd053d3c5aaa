package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
	"brixia-rugby/backend/internal/sessiongen"
	pkgerrors "brixia-rugby/backend/pkg/errors"
)

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoTrainingLocation = errors.New("no training location configured for this category, add one first")
	ErrInvalidMode        = errors.New("mode must be single, weekly, biweekly or monthly")
	ErrSessionExists      = errors.New("a session already exists for this category, date and location")
)

// SessionService training sessions, including bulk generation
type SessionService interface {
	Generate(ctx context.Context, req *dto.GenerateSessionsRequest, callerID string) (*dto.GenerateSessionsResponse, error)
	Create(ctx context.Context, req *dto.CreateSessionRequest, callerID string) (*dto.SessionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SessionResponse, error)
	List(ctx context.Context, req *dto.SessionListRequest) ([]dto.SessionResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSessionRequest, callerID string) (*dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
}

type sessionService struct {
	club   *config.ClubConfig
	repo   *repository.Repository
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewSessionService creates a SessionService. Dates without an explicit
// reference are resolved in the club timezone.
func NewSessionService(club *config.ClubConfig, repo *repository.Repository, logger *zap.Logger) SessionService {
	return &sessionService{
		club:   club,
		repo:   repo,
		logger: logger,
		loc:    club.Location(),
		now:    time.Now,
	}
}

// ────────────────────── Generate ──────────────────────

func (s *sessionService) Generate(ctx context.Context, req *dto.GenerateSessionsRequest, callerID string) (*dto.GenerateSessionsResponse, error) {
	if _, err := s.repo.Category.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = s.club.DefaultMode
	}

	var ref time.Time
	if req.ReferenceDate != "" {
		d, err := parseDate(req.ReferenceDate)
		if err != nil {
			return nil, err
		}
		ref = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	}

	dispatcher := sessiongen.NewDispatcher(
		&sessionStore{repo: s.repo, callerID: callerID},
		sessiongen.WithLocation(s.loc),
		sessiongen.WithClock(s.now),
	)
	result, err := dispatcher.Dispatch(ctx, sessiongen.Request{
		CategoryID:    req.CategoryID,
		Mode:          sessiongen.Mode(mode),
		ReferenceDate: ref,
	})
	if err != nil {
		switch {
		case errors.Is(err, sessiongen.ErrInvalidConfiguration):
			return nil, ErrNoTrainingLocation
		case errors.Is(err, sessiongen.ErrUnknownMode):
			return nil, ErrInvalidMode
		case errors.Is(err, sessiongen.ErrUnknownWeekday):
			return nil, ErrInvalidWeekday
		}
		s.logger.Error("generate sessions failed",
			zap.String("category_id", req.CategoryID),
			zap.String("mode", mode),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sessions generated",
		zap.String("category_id", req.CategoryID),
		zap.String("mode", mode),
		zap.Int("drafts", len(result.Drafts)),
		zap.Int("inserted", result.Inserted),
	)

	drafts := make([]dto.SessionDraftResponse, 0, len(result.Drafts))
	for _, d := range result.Drafts {
		drafts = append(drafts, dto.SessionDraftResponse{
			CategoryID:  d.CategoryID,
			SessionDate: d.Date(),
			Location:    d.Location,
			AwayPlace:   d.AwayPlace,
			StartTime:   formatClock(d.StartTime),
			EndTime:     formatClock(d.EndTime),
		})
	}

	return &dto.GenerateSessionsResponse{
		Mode:      mode,
		Generated: len(result.Drafts),
		Inserted:  result.Inserted,
		Skipped:   len(result.Drafts) - result.Inserted,
		Sessions:  drafts,
	}, nil
}

// sessionStore backs the generator with the repositories.
type sessionStore struct {
	repo     *repository.Repository
	callerID string
}

func (p *sessionStore) ListTrainingSlots(ctx context.Context, categoryID string) ([]sessiongen.Slot, error) {
	list, err := p.repo.TrainingLocation.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	slots := make([]sessiongen.Slot, 0, len(list))
	for _, tl := range list {
		wd, err := sessiongen.ParseWeekday(tl.Weekday)
		if err != nil {
			return nil, fmt.Errorf("training location %s: %w", tl.TrainingLocationID, err)
		}
		slots = append(slots, sessiongen.Slot{
			Location:  tl.Location,
			Weekday:   wd,
			StartTime: tl.StartTime,
			EndTime:   tl.EndTime,
		})
	}
	return slots, nil
}

func (p *sessionStore) BulkInsertSessions(ctx context.Context, drafts []sessiongen.Draft) (int, error) {
	rows := make([]model.Session, 0, len(drafts))
	for _, d := range drafts {
		row := model.Session{
			CategoryID:  d.CategoryID,
			SessionDate: toDate(d.SessionDate),
			Location:    d.Location,
			AwayPlace:   d.AwayPlace,
			StartTime:   strPtr(d.StartTime),
			EndTime:     strPtr(d.EndTime),
			Version:     1,
		}
		row.CreatedBy = &p.callerID
		row.UpdatedBy = &p.callerID
		rows = append(rows, row)
	}

	n, err := p.repo.Session.BulkCreate(ctx, rows)
	return int(n), err
}

// ────────────────────── Create ──────────────────────

func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest, callerID string) (*dto.SessionResponse, error) {
	if _, err := s.repo.Category.GetByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	date, err := parseDate(req.SessionDate)
	if err != nil {
		return nil, err
	}
	start, end, err := optionalTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	loc := sessiongen.NormalizeLocation(strings.TrimSpace(req.Location))
	away := req.AwayPlace
	if away == nil && !sessiongen.IsHomeLocation(loc) {
		away = &loc
	}

	sess := &model.Session{
		CategoryID:  req.CategoryID,
		SessionDate: toDate(date),
		Location:    loc,
		AwayPlace:   away,
		StartTime:   start,
		EndTime:     end,
		Notes:       req.Notes,
		Version:     1,
	}
	sess.CreatedBy = &callerID
	sess.UpdatedBy = &callerID

	if err := s.ensureSlotFree(ctx, sess, ""); err != nil {
		return nil, err
	}
	if err := s.repo.Session.Create(ctx, sess); err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		return nil, err
	}
	return toSessionResponse(sess), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *sessionService) GetByID(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(sess), nil
}

// ────────────────────── List ──────────────────────

func (s *sessionService) List(ctx context.Context, req *dto.SessionListRequest) ([]dto.SessionResponse, int64, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.SessionFilter{CategoryID: req.CategoryID, From: from, To: to}
	sessions, total, err := s.repo.Session.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list sessions failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *toSessionResponse(&sessions[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *sessionService) Update(ctx context.Context, id string, req *dto.UpdateSessionRequest, callerID string) (*dto.SessionResponse, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Version != req.Version {
		return nil, ErrVersionConflict
	}

	if req.SessionDate != nil {
		d, err := parseDate(*req.SessionDate)
		if err != nil {
			return nil, err
		}
		sess.SessionDate = toDate(d)
	}
	if req.Location != nil {
		loc := sessiongen.NormalizeLocation(strings.TrimSpace(*req.Location))
		sess.Location = loc
		if sessiongen.IsHomeLocation(loc) {
			sess.AwayPlace = nil
		} else {
			sess.AwayPlace = &loc
		}
	}
	// an explicit away_place wins over the one derived from location
	if req.AwayPlace != nil {
		sess.AwayPlace = strPtr(*req.AwayPlace)
	}

	startRaw, endRaw := deref(sess.StartTime), deref(sess.EndTime)
	if req.StartTime != nil {
		startRaw = *req.StartTime
	}
	if req.EndTime != nil {
		endRaw = *req.EndTime
	}
	if sess.StartTime, sess.EndTime, err = optionalTimeRange(startRaw, endRaw); err != nil {
		return nil, err
	}
	if req.Notes != nil {
		sess.Notes = *req.Notes
	}
	sess.UpdatedBy = &callerID

	if req.SessionDate != nil || req.Location != nil {
		if err := s.ensureSlotFree(ctx, sess, sess.SessionID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Session.Update(ctx, sess); err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, ErrVersionConflict
		}
		s.logger.Error("update session failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSessionResponse(sess), nil
}

// ────────────────────── Delete ──────────────────────

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Session.Delete(ctx, id); err != nil {
		s.logger.Error("delete session failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── helpers ──────────────────────

// ensureSlotFree rejects a (category, date, location) already taken by
// another session. selfID is skipped so an update may keep its own slot.
func (s *sessionService) ensureSlotFree(ctx context.Context, sess *model.Session, selfID string) error {
	existing, err := s.repo.Session.FindBySlot(ctx, sess.CategoryID, sess.SessionDate, sess.Location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("check session slot failed", zap.Error(err))
		return err
	}
	if existing.SessionID != selfID {
		return ErrSessionExists
	}
	return nil
}

func (s *sessionService) get(ctx context.Context, id string) (*model.Session, error) {
	sess, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("lookup session failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return sess, nil
}

// optionalTimeRange either bound may be empty; when both are set start < end.
func optionalTimeRange(startRaw, endRaw string) (*string, *string, error) {
	start, err := parseOptionalClock(startRaw)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseOptionalClock(endRaw)
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && *start >= *end {
		return nil, nil, ErrInvalidTimeRange
	}
	return start, end, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toSessionResponse(sess *model.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:          sess.SessionID,
		CategoryID:  sess.CategoryID,
		Category:    toCategoryBrief(sess.Category),
		SessionDate: formatDate(sess.SessionDate),
		Weekday:     sessiongen.WeekdayOf(time.Time(sess.SessionDate)).String(),
		Location:    sess.Location,
		AwayPlace:   sess.AwayPlace,
		StartTime:   formatOptionalClock(sess.StartTime),
		EndTime:     formatOptionalClock(sess.EndTime),
		Notes:       sess.Notes,
		Version:     sess.Version,
		CreatedAt:   formatTimestamp(sess.CreatedAt),
	}
}
