package repository

import (
	"context"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
	pkgerrors "brixia-rugby/backend/pkg/errors"
)

// PlayerFilter optional list criteria
type PlayerFilter struct {
	CategoryID string
	Keyword    string
	ActiveOnly bool
}

// PlayerRepository roster
type PlayerRepository interface {
	Create(ctx context.Context, p *model.Player) error
	GetByID(ctx context.Context, id string) (*model.Player, error)
	List(ctx context.Context, f PlayerFilter, offset, limit int) ([]model.Player, int64, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.Player, error)
	Update(ctx context.Context, p *model.Player) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type playerRepo struct {
	db *gorm.DB
}

// NewPlayerRepo creates a PlayerRepository.
func NewPlayerRepo(db *gorm.DB) PlayerRepository {
	return &playerRepo{db: db}
}

func (r *playerRepo) Create(ctx context.Context, p *model.Player) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *playerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	var p model.Player
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("player_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepo) List(ctx context.Context, f PlayerFilter, offset, limit int) ([]model.Player, int64, error) {
	var players []model.Player
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Player{})
	if f.CategoryID != "" {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}
	if f.Keyword != "" {
		like := "%" + f.Keyword + "%"
		db = db.Where("first_name ILIKE ? OR last_name ILIKE ?", like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Category").
		Offset(offset).Limit(limit).
		Order("last_name ASC, first_name ASC").
		Find(&players).Error; err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// ListByCategory active roster of one category, used by registers and exports.
func (r *playerRepo) ListByCategory(ctx context.Context, categoryID string) ([]model.Player, error) {
	var players []model.Player
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("last_name ASC, first_name ASC").
		Find(&players).Error
	return players, err
}

func (r *playerRepo) Update(ctx context.Context, p *model.Player) error {
	oldVersion := p.Version
	result := r.db.WithContext(ctx).
		Model(p).
		Where("player_id = ? AND version = ?", p.PlayerID, oldVersion).
		Updates(map[string]interface{}{
			"category_id":    p.CategoryID,
			"first_name":     p.FirstName,
			"last_name":      p.LastName,
			"birth_date":     p.BirthDate,
			"position":       p.Position,
			"jersey_number":  p.JerseyNumber,
			"email":          p.Email,
			"phone":          p.Phone,
			"medical_expiry": p.MedicalExpiry,
			"is_active":      p.IsActive,
			"updated_by":     p.UpdatedBy,
			"version":        oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	p.Version = oldVersion + 1
	return nil
}

func (r *playerRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Player{}).
		Where("player_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
