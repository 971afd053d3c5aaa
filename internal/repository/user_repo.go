package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"brixia-rugby/backend/internal/model"
)

// UserRepository application accounts
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filters *UserListFilters, offset, limit int) ([]model.User, int64, error)
	Delete(ctx context.Context, id string, deletedBy string) error
}

// UserListFilters optional filters for List
type UserListFilters struct {
	Role    string
	Keyword string // matches name or email
}

// userRepo gorm implementation of UserRepository
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}

func (r *userRepo) List(ctx context.Context, filters *UserListFilters, offset, limit int) ([]model.User, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.User{})
	if filters != nil {
		if filters.Role != "" {
			db = db.Where("role = ?", filters.Role)
		}
		if filters.Keyword != "" {
			like := "%" + strings.ToLower(filters.Keyword) + "%"
			db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := db.Order("name ASC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *userRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
