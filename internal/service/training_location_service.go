package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
	"brixia-rugby/backend/internal/sessiongen"
)

var (
	ErrTrainingLocationNotFound = errors.New("training location not found")
	ErrInvalidWeekday           = errors.New("invalid weekday, expected Lunedì … Domenica")
	ErrInvalidTimeRange         = errors.New("start_time must be before end_time")
	ErrTrainingLocationClash    = errors.New("the category already trains at this ground on that weekday")
)

// TrainingLocationService weekly slots per category
type TrainingLocationService interface {
	Create(ctx context.Context, categoryID string, req *dto.CreateTrainingLocationRequest, callerID string) (*dto.TrainingLocationResponse, error)
	ListByCategory(ctx context.Context, categoryID string) ([]dto.TrainingLocationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTrainingLocationRequest, callerID string) (*dto.TrainingLocationResponse, error)
	Delete(ctx context.Context, id string) error
}

type trainingLocationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTrainingLocationService creates a TrainingLocationService.
func NewTrainingLocationService(repo *repository.Repository, logger *zap.Logger) TrainingLocationService {
	return &trainingLocationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *trainingLocationService) Create(ctx context.Context, categoryID string, req *dto.CreateTrainingLocationRequest, callerID string) (*dto.TrainingLocationResponse, error) {
	if _, err := s.repo.Category.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	wd, err := sessiongen.ParseWeekday(req.Weekday)
	if err != nil {
		return nil, ErrInvalidWeekday
	}
	start, end, err := validateTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	tl := &model.TrainingLocation{
		CategoryID: categoryID,
		Location:   strings.TrimSpace(req.Location),
		Weekday:    wd.String(),
		StartTime:  start,
		EndTime:    end,
	}
	tl.CreatedBy = &callerID
	tl.UpdatedBy = &callerID

	if err := s.ensureNoClash(ctx, tl); err != nil {
		return nil, err
	}
	if err := s.repo.TrainingLocation.Create(ctx, tl); err != nil {
		s.logger.Error("create training location failed", zap.Error(err))
		return nil, err
	}

	return toTrainingLocationResponse(tl), nil
}

// ────────────────────── List ──────────────────────

func (s *trainingLocationService) ListByCategory(ctx context.Context, categoryID string) ([]dto.TrainingLocationResponse, error) {
	list, err := s.repo.TrainingLocation.ListByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("list training locations failed", zap.String("category_id", categoryID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.TrainingLocationResponse, 0, len(list))
	for i := range list {
		result = append(result, *toTrainingLocationResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *trainingLocationService) Update(ctx context.Context, id string, req *dto.UpdateTrainingLocationRequest, callerID string) (*dto.TrainingLocationResponse, error) {
	tl, err := s.repo.TrainingLocation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingLocationNotFound
		}
		s.logger.Error("lookup training location failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Location != nil {
		tl.Location = strings.TrimSpace(*req.Location)
	}
	if req.Weekday != nil {
		wd, err := sessiongen.ParseWeekday(*req.Weekday)
		if err != nil {
			return nil, ErrInvalidWeekday
		}
		tl.Weekday = wd.String()
	}

	startRaw, endRaw := tl.StartTime, tl.EndTime
	if req.StartTime != nil {
		startRaw = *req.StartTime
	}
	if req.EndTime != nil {
		endRaw = *req.EndTime
	}
	start, end, err := validateTimeRange(startRaw, endRaw)
	if err != nil {
		return nil, err
	}
	tl.StartTime, tl.EndTime = start, end
	tl.UpdatedBy = &callerID

	if req.Location != nil || req.Weekday != nil {
		if err := s.ensureNoClash(ctx, tl); err != nil {
			return nil, err
		}
	}

	if err := s.repo.TrainingLocation.Update(ctx, tl); err != nil {
		s.logger.Error("update training location failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toTrainingLocationResponse(tl), nil
}

// ────────────────────── Delete ──────────────────────

func (s *trainingLocationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.TrainingLocation.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrainingLocationNotFound
		}
		return err
	}

	if err := s.repo.TrainingLocation.Delete(ctx, id); err != nil {
		s.logger.Error("delete training location failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ensureNoClash rejects a second slot on the same weekday at the same
// normalized ground. Generated sessions are keyed by (date, location), so
// such a pair would collapse into one session.
func (s *trainingLocationService) ensureNoClash(ctx context.Context, tl *model.TrainingLocation) error {
	slots, err := s.repo.TrainingLocation.ListByCategory(ctx, tl.CategoryID)
	if err != nil {
		s.logger.Error("list training locations failed", zap.String("category_id", tl.CategoryID), zap.Error(err))
		return err
	}
	ground := sessiongen.NormalizeLocation(tl.Location)
	for _, other := range slots {
		if other.TrainingLocationID == tl.TrainingLocationID {
			continue
		}
		if sessiongen.IndexOfName(other.Weekday) == sessiongen.IndexOfName(tl.Weekday) && strings.EqualFold(sessiongen.NormalizeLocation(other.Location), ground) {
			return ErrTrainingLocationClash
		}
	}
	return nil
}

// validateTimeRange both times are required and start < end.
func validateTimeRange(startRaw, endRaw string) (string, string, error) {
	start, err := parseClock(startRaw)
	if err != nil {
		return "", "", err
	}
	end, err := parseClock(endRaw)
	if err != nil {
		return "", "", err
	}
	// HH:MM:SS compares lexically
	if start >= end {
		return "", "", ErrInvalidTimeRange
	}
	return start, end, nil
}

func toTrainingLocationResponse(tl *model.TrainingLocation) *dto.TrainingLocationResponse {
	return &dto.TrainingLocationResponse{
		ID:           tl.TrainingLocationID,
		CategoryID:   tl.CategoryID,
		Location:     tl.Location,
		Weekday:      tl.Weekday,
		WeekdayIndex: sessiongen.IndexOfName(tl.Weekday),
		StartTime:    formatClock(tl.StartTime),
		EndTime:      formatClock(tl.EndTime),
		IsHome:       sessiongen.IsHomeLocation(sessiongen.NormalizeLocation(tl.Location)),
	}
}
