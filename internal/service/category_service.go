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
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryCodeExists = errors.New("category code already in use")
)

// CategoryService categories
type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest, callerID string) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error)
	List(ctx context.Context, req *dto.CategoryListRequest) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest, callerID string) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type categoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(repo *repository.Repository, logger *zap.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest, callerID string) (*dto.CategoryResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if err := s.ensureCodeFree(ctx, code, ""); err != nil {
		return nil, err
	}

	cat := &model.Category{
		Name:      strings.TrimSpace(req.Name),
		Code:      code,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	cat.CreatedBy = &callerID
	cat.UpdatedBy = &callerID

	if err := s.repo.Category.Create(ctx, cat); err != nil {
		s.logger.Error("create category failed", zap.Error(err))
		return nil, err
	}

	return toCategoryResponse(cat, 0), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *categoryService) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	cat, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Category.CountPlayers(ctx)
	if err != nil {
		s.logger.Error("count players failed", zap.Error(err))
		return nil, err
	}

	return toCategoryResponse(cat, counts[cat.CategoryID]), nil
}

// ────────────────────── List ──────────────────────

func (s *categoryService) List(ctx context.Context, req *dto.CategoryListRequest) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.Category.List(ctx, req.IncludeInactive)
	if err != nil {
		s.logger.Error("list categories failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Category.CountPlayers(ctx)
	if err != nil {
		s.logger.Error("count players failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CategoryResponse, 0, len(cats))
	for i := range cats {
		result = append(result, *toCategoryResponse(&cats[i], counts[cats[i].CategoryID]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *categoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest, callerID string) (*dto.CategoryResponse, error) {
	cat, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if err := s.ensureCodeFree(ctx, code, id); err != nil {
			return nil, err
		}
		cat.Code = code
	}
	if req.Name != nil {
		cat.Name = strings.TrimSpace(*req.Name)
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	cat.UpdatedBy = &callerID

	if err := s.repo.Category.Update(ctx, cat); err != nil {
		s.logger.Error("update category failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *categoryService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Category.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete category failed", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("category deleted", zap.String("id", id), zap.String("by", callerID))
	return nil
}

// ────────────────────── helpers ──────────────────────

func (s *categoryService) get(ctx context.Context, id string) (*model.Category, error) {
	cat, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("lookup category failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) ensureCodeFree(ctx context.Context, code, selfID string) error {
	existing, err := s.repo.Category.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.CategoryID != selfID {
		return ErrCategoryCodeExists
	}
	return nil
}

func toCategoryResponse(cat *model.Category, players int64) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          cat.CategoryID,
		Name:        cat.Name,
		Code:        cat.Code,
		SortOrder:   cat.SortOrder,
		IsActive:    cat.IsActive,
		PlayerCount: players,
		CreatedAt:   formatTimestamp(cat.CreatedAt),
		UpdatedAt:   formatTimestamp(cat.UpdatedAt),
	}
}

func toCategoryBrief(cat *model.Category) *dto.CategoryBrief {
	if cat == nil {
		return nil
	}
	return &dto.CategoryBrief{ID: cat.CategoryID, Name: cat.Name, Code: cat.Code}
}
