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

var ErrStaffNotFound = errors.New("staff member not found")

// StaffService coaching and support staff
type StaffService interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest, callerID string) (*dto.StaffResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StaffResponse, error)
	List(ctx context.Context, req *dto.StaffListRequest) ([]dto.StaffResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStaffRequest, callerID string) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService creates a StaffService.
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest, callerID string) (*dto.StaffResponse, error) {
	if req.CategoryID != "" {
		if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	st := &model.Staff{
		CategoryID: strPtr(req.CategoryID),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
	}
	st.CreatedBy = &callerID
	st.UpdatedBy = &callerID

	if err := s.repo.Staff.Create(ctx, st); err != nil {
		s.logger.Error("create staff failed", zap.Error(err))
		return nil, err
	}
	return toStaffResponse(st), nil
}

func (s *staffService) GetByID(ctx context.Context, id string) (*dto.StaffResponse, error) {
	st, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStaffResponse(st), nil
}

func (s *staffService) List(ctx context.Context, req *dto.StaffListRequest) ([]dto.StaffResponse, error) {
	list, err := s.repo.Staff.List(ctx, req.CategoryID, req.Role)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		result = append(result, *toStaffResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) Update(ctx context.Context, id string, req *dto.UpdateStaffRequest, callerID string) (*dto.StaffResponse, error) {
	st, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
				return nil, err
			}
		}
		st.CategoryID = strPtr(*req.CategoryID)
		st.Category = nil
	}
	if req.FirstName != nil {
		st.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		st.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Role != nil {
		st.Role = *req.Role
	}
	if req.Email != nil {
		st.Email = *req.Email
	}
	if req.Phone != nil {
		st.Phone = *req.Phone
	}
	st.UpdatedBy = &callerID

	if err := s.repo.Staff.Update(ctx, st); err != nil {
		s.logger.Error("update staff failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toStaffResponse(st), nil
}

func (s *staffService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Staff.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("delete staff failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *staffService) get(ctx context.Context, id string) (*model.Staff, error) {
	st, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("lookup staff failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return st, nil
}

func (s *staffService) ensureCategory(ctx context.Context, id string) error {
	if _, err := s.repo.Category.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func toStaffResponse(st *model.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:         st.StaffID,
		CategoryID: st.CategoryID,
		Category:   toCategoryBrief(st.Category),
		FirstName:  st.FirstName,
		LastName:   st.LastName,
		Role:       st.Role,
		Email:      st.Email,
		Phone:      st.Phone,
	}
}
