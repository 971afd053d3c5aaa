package repository

import (
	"context"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// NoteRepository staff notes on players
type NoteRepository interface {
	Create(ctx context.Context, n *model.Note) error
	GetByID(ctx context.Context, id string) (*model.Note, error)
	ListByPlayer(ctx context.Context, playerID string) ([]model.Note, error)
	Update(ctx context.Context, n *model.Note) error
	Delete(ctx context.Context, id string) error
}

type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepo creates a NoteRepository.
func NewNoteRepo(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *model.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("note_id = ?", id).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByPlayer every note of a player, newest first.
func (r *noteRepo) ListByPlayer(ctx context.Context, playerID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepo) Update(ctx context.Context, n *model.Note) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("note_id = ?", n.NoteID).
		Updates(map[string]interface{}{
			"note_type":  n.NoteType,
			"content":    n.Content,
			"updated_by": n.UpdatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *noteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("note_id = ?", id).
		Delete(&model.Note{}).Error
}
