package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
)

var (
	ErrInjuryNotFound      = errors.New("injury not found")
	ErrInjuryAlreadyClosed = errors.New("player already returned from this injury")
	ErrReturnBeforeInjury  = errors.New("return date precedes the injury date")
)

// InjuryService injury records
type InjuryService interface {
	Create(ctx context.Context, req *dto.CreateInjuryRequest, callerID string) (*dto.InjuryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.InjuryResponse, error)
	List(ctx context.Context, req *dto.InjuryListRequest) ([]dto.InjuryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateInjuryRequest, callerID string) (*dto.InjuryResponse, error)
	MarkReturned(ctx context.Context, id string, req *dto.MarkReturnedRequest, callerID string) (*dto.InjuryResponse, error)
	Delete(ctx context.Context, id string) error
}

type injuryService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewInjuryService creates an InjuryService.
func NewInjuryService(repo *repository.Repository, logger *zap.Logger) InjuryService {
	return &injuryService{repo: repo, logger: logger, now: time.Now}
}

func (s *injuryService) Create(ctx context.Context, req *dto.CreateInjuryRequest, callerID string) (*dto.InjuryResponse, error) {
	player, err := s.repo.Player.GetByID(ctx, req.PlayerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	injured, err := parseDate(req.InjuryDate)
	if err != nil {
		return nil, err
	}
	expected, err := optionalDate(req.ExpectedReturn)
	if err != nil {
		return nil, err
	}
	if expected != nil && time.Time(*expected).Before(injured) {
		return nil, ErrReturnBeforeInjury
	}

	severity := req.Severity
	if severity == "" {
		severity = model.SeverityMinor
	}

	inj := &model.Injury{
		PlayerID:       req.PlayerID,
		InjuryDate:     toDate(injured),
		BodyPart:       strings.TrimSpace(req.BodyPart),
		Description:    req.Description,
		Severity:       severity,
		ExpectedReturn: expected,
	}
	inj.CreatedBy = &callerID
	inj.UpdatedBy = &callerID

	if err := s.repo.Injury.Create(ctx, inj); err != nil {
		s.logger.Error("create injury failed", zap.Error(err))
		return nil, err
	}
	inj.Player = player
	return toInjuryResponse(inj), nil
}

func (s *injuryService) GetByID(ctx context.Context, id string) (*dto.InjuryResponse, error) {
	inj, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInjuryResponse(inj), nil
}

func (s *injuryService) List(ctx context.Context, req *dto.InjuryListRequest) ([]dto.InjuryResponse, error) {
	list, err := s.repo.Injury.List(ctx, repository.InjuryFilter{
		PlayerID:   req.PlayerID,
		CategoryID: req.CategoryID,
		ActiveOnly: req.ActiveOnly,
	})
	if err != nil {
		s.logger.Error("list injuries failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InjuryResponse, 0, len(list))
	for i := range list {
		result = append(result, *toInjuryResponse(&list[i]))
	}
	return result, nil
}

func (s *injuryService) Update(ctx context.Context, id string, req *dto.UpdateInjuryRequest, callerID string) (*dto.InjuryResponse, error) {
	inj, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.InjuryDate != nil {
		d, err := parseDate(*req.InjuryDate)
		if err != nil {
			return nil, err
		}
		inj.InjuryDate = toDate(d)
	}
	if req.BodyPart != nil {
		inj.BodyPart = strings.TrimSpace(*req.BodyPart)
	}
	if req.Description != nil {
		inj.Description = *req.Description
	}
	if req.Severity != nil {
		inj.Severity = *req.Severity
	}
	if req.ExpectedReturn != nil {
		if inj.ExpectedReturn, err = optionalDate(*req.ExpectedReturn); err != nil {
			return nil, err
		}
	}
	if inj.ExpectedReturn != nil && time.Time(*inj.ExpectedReturn).Before(time.Time(inj.InjuryDate)) {
		return nil, ErrReturnBeforeInjury
	}
	inj.UpdatedBy = &callerID

	if err := s.repo.Injury.Update(ctx, inj); err != nil {
		s.logger.Error("update injury failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toInjuryResponse(inj), nil
}

// MarkReturned closes an injury; the date defaults to today.
func (s *injuryService) MarkReturned(ctx context.Context, id string, req *dto.MarkReturnedRequest, callerID string) (*dto.InjuryResponse, error) {
	inj, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inj.IsActive() {
		return nil, ErrInjuryAlreadyClosed
	}

	returned := toDate(s.now())
	if req.ReturnedAt != "" {
		d, err := parseDate(req.ReturnedAt)
		if err != nil {
			return nil, err
		}
		returned = toDate(d)
	}
	if time.Time(returned).Before(time.Time(inj.InjuryDate)) {
		return nil, ErrReturnBeforeInjury
	}

	inj.ReturnedAt = &returned
	inj.UpdatedBy = &callerID

	if err := s.repo.Injury.Update(ctx, inj); err != nil {
		s.logger.Error("close injury failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("player returned from injury", zap.String("injury_id", id), zap.String("player_id", inj.PlayerID))
	return toInjuryResponse(inj), nil
}

func (s *injuryService) Delete(ctx context.Context, id string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Injury.Delete(ctx, id); err != nil {
		s.logger.Error("delete injury failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *injuryService) get(ctx context.Context, id string) (*model.Injury, error) {
	inj, err := s.repo.Injury.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInjuryNotFound
		}
		s.logger.Error("lookup injury failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return inj, nil
}

func toInjuryResponse(inj *model.Injury) *dto.InjuryResponse {
	resp := &dto.InjuryResponse{
		ID:             inj.InjuryID,
		PlayerID:       inj.PlayerID,
		InjuryDate:     formatDate(inj.InjuryDate),
		BodyPart:       inj.BodyPart,
		Description:    inj.Description,
		Severity:       inj.Severity,
		ExpectedReturn: formatOptionalDate(inj.ExpectedReturn),
		ReturnedAt:     formatOptionalDate(inj.ReturnedAt),
		IsActive:       inj.IsActive(),
	}
	if inj.Player != nil {
		resp.PlayerName = inj.Player.FullName()
	}
	return resp
}
