package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brixia-rugby/backend/internal/model"
)

// AttendanceFilter optional criteria; date bounds apply to the session date.
type AttendanceFilter struct {
	SessionID  string
	PlayerID   string
	CategoryID string
	Status     string
	From       *time.Time
	To         *time.Time
}

// AttendanceRepository session registers
type AttendanceRepository interface {
	Upsert(ctx context.Context, rows []model.Attendance) error
	ListBySession(ctx context.Context, sessionID string) ([]model.Attendance, error)
	List(ctx context.Context, f AttendanceFilter) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// Upsert writes a register; an existing (session, player) row gets the new status.
func (r *attendanceRepo) Upsert(ctx context.Context, rows []model.Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "note", "updated_at", "updated_by"}),
		}).
		Create(&rows).Error
}

func (r *attendanceRepo) ListBySession(ctx context.Context, sessionID string) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("session_id = ?", sessionID).
		Find(&rows).Error
	return rows, err
}

func (r *attendanceRepo) List(ctx context.Context, f AttendanceFilter) ([]model.Attendance, error) {
	var rows []model.Attendance
	db := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Session").
		Joins("JOIN sessions ON sessions.session_id = attendance.session_id")

	if f.SessionID != "" {
		db = db.Where("attendance.session_id = ?", f.SessionID)
	}
	if f.PlayerID != "" {
		db = db.Where("attendance.player_id = ?", f.PlayerID)
	}
	if f.CategoryID != "" {
		db = db.Where("sessions.category_id = ?", f.CategoryID)
	}
	if f.Status != "" {
		db = db.Where("attendance.status = ?", f.Status)
	}
	if f.From != nil {
		db = db.Where("sessions.session_date >= ?", f.From.Format("2006-01-02"))
	}
	if f.To != nil {
		db = db.Where("sessions.session_date <= ?", f.To.Format("2006-01-02"))
	}

	err := db.Order("sessions.session_date ASC").Find(&rows).Error
	return rows, err
}
