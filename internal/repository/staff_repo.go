package repository

import (
	"context"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// StaffRepository coaching and support staff
type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	List(ctx context.Context, categoryID, role string) ([]model.Staff, error)
	Update(ctx context.Context, s *model.Staff) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates a StaffRepository.
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("staff_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *staffRepo) List(ctx context.Context, categoryID, role string) ([]model.Staff, error) {
	var list []model.Staff
	db := r.db.WithContext(ctx).Preload("Category")
	if categoryID != "" {
		db = db.Where("category_id = ?", categoryID)
	}
	if role != "" {
		db = db.Where("role = ?", role)
	}
	err := db.Order("last_name ASC, first_name ASC").Find(&list).Error
	return list, err
}

func (r *staffRepo) Update(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Omit("Category").Save(s).Error
}

func (r *staffRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Staff{}).
		Where("staff_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
