package repository

import (
	"context"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// InjuryFilter optional list criteria
type InjuryFilter struct {
	PlayerID   string
	CategoryID string
	ActiveOnly bool
}

// InjuryRepository medical records
type InjuryRepository interface {
	Create(ctx context.Context, inj *model.Injury) error
	GetByID(ctx context.Context, id string) (*model.Injury, error)
	List(ctx context.Context, f InjuryFilter) ([]model.Injury, error)
	Update(ctx context.Context, inj *model.Injury) error
	Delete(ctx context.Context, id string) error
}

type injuryRepo struct {
	db *gorm.DB
}

// NewInjuryRepo creates an InjuryRepository.
func NewInjuryRepo(db *gorm.DB) InjuryRepository {
	return &injuryRepo{db: db}
}

func (r *injuryRepo) Create(ctx context.Context, inj *model.Injury) error {
	return r.db.WithContext(ctx).Create(inj).Error
}

func (r *injuryRepo) GetByID(ctx context.Context, id string) (*model.Injury, error) {
	var inj model.Injury
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("injury_id = ?", id).
		First(&inj).Error
	if err != nil {
		return nil, err
	}
	return &inj, nil
}

func (r *injuryRepo) List(ctx context.Context, f InjuryFilter) ([]model.Injury, error) {
	var list []model.Injury
	db := r.db.WithContext(ctx).Preload("Player")
	if f.PlayerID != "" {
		db = db.Where("injuries.player_id = ?", f.PlayerID)
	}
	if f.CategoryID != "" {
		db = db.Joins("JOIN players ON players.player_id = injuries.player_id").
			Where("players.category_id = ?", f.CategoryID)
	}
	if f.ActiveOnly {
		db = db.Where("injuries.returned_at IS NULL")
	}
	err := db.Order("injuries.injury_date DESC").Find(&list).Error
	return list, err
}

func (r *injuryRepo) Update(ctx context.Context, inj *model.Injury) error {
	return r.db.WithContext(ctx).Omit("Player").Save(inj).Error
}

func (r *injuryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("injury_id = ?", id).
		Delete(&model.Injury{}).Error
}
