package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// EventFilter optional list criteria. A category filter also matches
// club-wide events (NULL category).
type EventFilter struct {
	CategoryID string
	EventType  string
	From       *time.Time
	To         *time.Time
}

// EventRepository matches, tournaments, meetings
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, f EventFilter) ([]model.Event, error)
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id string) error
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo creates an EventRepository.
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var e model.Event
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("event_id = ?", id).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) List(ctx context.Context, f EventFilter) ([]model.Event, error) {
	var events []model.Event
	db := r.db.WithContext(ctx).Preload("Category")
	if f.CategoryID != "" {
		db = db.Where("category_id = ? OR category_id IS NULL", f.CategoryID)
	}
	if f.EventType != "" {
		db = db.Where("event_type = ?", f.EventType)
	}
	if f.From != nil {
		db = db.Where("event_date >= ?", f.From.Format("2006-01-02"))
	}
	if f.To != nil {
		db = db.Where("event_date <= ?", f.To.Format("2006-01-02"))
	}
	err := db.Order("event_date ASC, start_time ASC").Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Omit("Category").Save(e).Error
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.Event{}).Error
}
