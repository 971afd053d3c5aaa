package repository

import (
	"context"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// CategoryRepository age groups / teams
type CategoryRepository interface {
	Create(ctx context.Context, cat *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	GetByCode(ctx context.Context, code string) (*model.Category, error)
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	Update(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, id string, deletedBy string) error
	CountPlayers(ctx context.Context) (map[string]int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo creates a CategoryRepository.
func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, cat *model.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var cat model.Category
	err := r.db.WithContext(ctx).
		Where("category_id = ?", id).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepo) GetByCode(ctx context.Context, code string) (*model.Category, error) {
	var cat model.Category
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepo) List(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	var cats []model.Category
	db := r.db.WithContext(ctx)

	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	err := db.Order("sort_order ASC, name ASC").Find(&cats).Error
	return cats, err
}

func (r *categoryRepo) Update(ctx context.Context, cat *model.Category) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("category_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

// CountPlayers active players per category id.
func (r *categoryRepo) CountPlayers(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		CategoryID string
		Count      int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Player{}).
		Select("category_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
