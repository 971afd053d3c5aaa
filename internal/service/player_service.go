package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
	pkgerrors "brixia-rugby/backend/pkg/errors"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrVersionConflict = errors.New("record was modified by someone else, reload and retry")
)

// PlayerService roster
type PlayerService interface {
	Create(ctx context.Context, req *dto.CreatePlayerRequest, callerID string) (*dto.PlayerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PlayerResponse, error)
	List(ctx context.Context, req *dto.PlayerListRequest) ([]dto.PlayerResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdatePlayerRequest, callerID string) (*dto.PlayerResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type playerService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewPlayerService creates a PlayerService.
func NewPlayerService(repo *repository.Repository, logger *zap.Logger) PlayerService {
	return &playerService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *playerService) Create(ctx context.Context, req *dto.CreatePlayerRequest, callerID string) (*dto.PlayerResponse, error) {
	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	birth, err := optionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	medical, err := optionalDate(req.MedicalExpiry)
	if err != nil {
		return nil, err
	}

	p := &model.Player{
		CategoryID:    req.CategoryID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		BirthDate:     birth,
		Position:      req.Position,
		JerseyNumber:  req.JerseyNumber,
		Email:         req.Email,
		Phone:         req.Phone,
		MedicalExpiry: medical,
		IsActive:      true,
	}
	p.Version = 1
	p.CreatedBy = &callerID
	p.UpdatedBy = &callerID

	if err := s.repo.Player.Create(ctx, p); err != nil {
		s.logger.Error("create player failed", zap.Error(err))
		return nil, err
	}

	return s.toPlayerResponse(p), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *playerService) GetByID(ctx context.Context, id string) (*dto.PlayerResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toPlayerResponse(p), nil
}

// ────────────────────── List ──────────────────────

func (s *playerService) List(ctx context.Context, req *dto.PlayerListRequest) ([]dto.PlayerResponse, int64, error) {
	filter := repository.PlayerFilter{
		CategoryID: req.CategoryID,
		Keyword:    strings.TrimSpace(req.Keyword),
		ActiveOnly: req.ActiveOnly,
	}
	players, total, err := s.repo.Player.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list players failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.PlayerResponse, 0, len(players))
	for i := range players {
		result = append(result, *s.toPlayerResponse(&players[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

func (s *playerService) Update(ctx context.Context, id string, req *dto.UpdatePlayerRequest, callerID string) (*dto.PlayerResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Version != req.Version {
		return nil, ErrVersionConflict
	}

	if req.CategoryID != nil && *req.CategoryID != p.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *req.CategoryID
		p.Category = nil
	}
	if req.FirstName != nil {
		p.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		p.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.BirthDate != nil {
		if p.BirthDate, err = optionalDate(*req.BirthDate); err != nil {
			return nil, err
		}
	}
	if req.Position != nil {
		p.Position = *req.Position
	}
	if req.JerseyNumber != nil {
		p.JerseyNumber = req.JerseyNumber
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.MedicalExpiry != nil {
		if p.MedicalExpiry, err = optionalDate(*req.MedicalExpiry); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedBy = &callerID

	if err := s.repo.Player.Update(ctx, p); err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, ErrVersionConflict
		}
		s.logger.Error("update player failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toPlayerResponse(p), nil
}

// ────────────────────── Delete ──────────────────────

func (s *playerService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Player.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete player failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── helpers ──────────────────────

func (s *playerService) get(ctx context.Context, id string) (*model.Player, error) {
	p, err := s.repo.Player.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		s.logger.Error("lookup player failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *playerService) ensureCategory(ctx context.Context, id string) error {
	if _, err := s.repo.Category.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *playerService) toPlayerResponse(p *model.Player) *dto.PlayerResponse {
	expired := false
	if p.MedicalExpiry != nil {
		today := toDate(s.now())
		expired = time.Time(*p.MedicalExpiry).Before(time.Time(today))
	}
	return &dto.PlayerResponse{
		ID:             p.PlayerID,
		Category:       toCategoryBrief(p.Category),
		CategoryID:     p.CategoryID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		BirthDate:      formatOptionalDate(p.BirthDate),
		Position:       p.Position,
		JerseyNumber:   p.JerseyNumber,
		Email:          p.Email,
		Phone:          p.Phone,
		MedicalExpiry:  formatOptionalDate(p.MedicalExpiry),
		MedicalExpired: expired,
		IsActive:       p.IsActive,
		Version:        p.Version,
		CreatedAt:      formatTimestamp(p.CreatedAt),
	}
}

// optionalDate nil for "", otherwise a parsed date column value.
func optionalDate(s string) (*datatypes.Date, error) {
	t, err := parseOptionalDate(s)
	if err != nil || t == nil {
		return nil, err
	}
	d := toDate(*t)
	return &d, nil
}
