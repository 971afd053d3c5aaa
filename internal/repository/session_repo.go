package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brixia-rugby/backend/internal/model"
	pkgerrors "brixia-rugby/backend/pkg/errors"
)

// SessionFilter optional list criteria; From/To are inclusive dates.
type SessionFilter struct {
	CategoryID string
	From       *time.Time
	To         *time.Time
}

// SessionRepository dated training sessions
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	BulkCreate(ctx context.Context, sessions []model.Session) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Session, error)
	FindBySlot(ctx context.Context, categoryID string, date datatypes.Date, location string) (*model.Session, error)
	List(ctx context.Context, f SessionFilter, offset, limit int) ([]model.Session, int64, error)
	ListAll(ctx context.Context, f SessionFilter) ([]model.Session, error)
	Update(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates a SessionRepository.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// BulkCreate inserts the whole batch in one statement. Rows colliding on
// (category_id, session_date, location) are skipped; the count of rows
// actually written is returned.
func (r *sessionRepo) BulkCreate(ctx context.Context, sessions []model.Session) (int64, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "category_id"},
				{Name: "session_date"},
				{Name: "location"},
			},
			DoNothing: true,
		}).Create(&sessions)
		if result.Error != nil {
			return result.Error
		}
		inserted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("session_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindBySlot the session holding (category_id, session_date, location), or
// gorm.ErrRecordNotFound.
func (r *sessionRepo) FindBySlot(ctx context.Context, categoryID string, date datatypes.Date, location string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND session_date = ? AND location = ?", categoryID, date, location).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) scope(ctx context.Context, f SessionFilter) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Session{})
	if f.CategoryID != "" {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.From != nil {
		db = db.Where("session_date >= ?", f.From.Format("2006-01-02"))
	}
	if f.To != nil {
		db = db.Where("session_date <= ?", f.To.Format("2006-01-02"))
	}
	return db
}

func (r *sessionRepo) List(ctx context.Context, f SessionFilter, offset, limit int) ([]model.Session, int64, error) {
	var sessions []model.Session
	var total int64

	db := r.scope(ctx, f)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Category").
		Offset(offset).Limit(limit).
		Order("session_date ASC, start_time ASC").
		Find(&sessions).Error; err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// ListAll unpaginated variant used by exports.
func (r *sessionRepo) ListAll(ctx context.Context, f SessionFilter) ([]model.Session, error) {
	var sessions []model.Session
	err := r.scope(ctx, f).
		Order("session_date ASC, start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Update(ctx context.Context, s *model.Session) error {
	oldVersion := s.Version
	result := r.db.WithContext(ctx).
		Model(s).
		Where("session_id = ? AND version = ?", s.SessionID, oldVersion).
		Updates(map[string]interface{}{
			"session_date": s.SessionDate,
			"location":     s.Location,
			"away_place":   s.AwayPlace,
			"start_time":   s.StartTime,
			"end_time":     s.EndTime,
			"notes":        s.Notes,
			"updated_by":   s.UpdatedBy,
			"version":      oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	s.Version = oldVersion + 1
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", id).
		Delete(&model.Session{}).Error
}
