package repository

import (
	"context"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// TrainingLocationRepository weekly training slots of a category
type TrainingLocationRepository interface {
	Create(ctx context.Context, tl *model.TrainingLocation) error
	GetByID(ctx context.Context, id string) (*model.TrainingLocation, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.TrainingLocation, error)
	Update(ctx context.Context, tl *model.TrainingLocation) error
	Delete(ctx context.Context, id string) error
}

type trainingLocationRepo struct {
	db *gorm.DB
}

// NewTrainingLocationRepo creates a TrainingLocationRepository.
func NewTrainingLocationRepo(db *gorm.DB) TrainingLocationRepository {
	return &trainingLocationRepo{db: db}
}

func (r *trainingLocationRepo) Create(ctx context.Context, tl *model.TrainingLocation) error {
	return r.db.WithContext(ctx).Create(tl).Error
}

func (r *trainingLocationRepo) GetByID(ctx context.Context, id string) (*model.TrainingLocation, error) {
	var tl model.TrainingLocation
	err := r.db.WithContext(ctx).
		Where("training_location_id = ?", id).
		First(&tl).Error
	if err != nil {
		return nil, err
	}
	return &tl, nil
}

// ListByCategory returns slots in insertion order; the session generator
// breaks same-weekday ties on this order.
func (r *trainingLocationRepo) ListByCategory(ctx context.Context, categoryID string) ([]model.TrainingLocation, error) {
	var list []model.TrainingLocation
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC, training_location_id ASC").
		Find(&list).Error
	return list, err
}

func (r *trainingLocationRepo) Update(ctx context.Context, tl *model.TrainingLocation) error {
	return r.db.WithContext(ctx).Save(tl).Error
}

func (r *trainingLocationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("training_location_id = ?", id).
		Delete(&model.TrainingLocation{}).Error
}
