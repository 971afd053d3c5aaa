package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every repository.
type Repository struct {
	db               *gorm.DB
	User             UserRepository
	Category         CategoryRepository
	TrainingLocation TrainingLocationRepository
	Player           PlayerRepository
	Staff            StaffRepository
	Session          SessionRepository
	Event            EventRepository
	Attendance       AttendanceRepository
	Injury           InjuryRepository
	Note             NoteRepository
}

// NewRepository wires every repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:               db,
		User:             NewUserRepo(db),
		Category:         NewCategoryRepo(db),
		TrainingLocation: NewTrainingLocationRepo(db),
		Player:           NewPlayerRepo(db),
		Staff:            NewStaffRepo(db),
		Session:          NewSessionRepo(db),
		Event:            NewEventRepo(db),
		Attendance:       NewAttendanceRepo(db),
		Injury:           NewInjuryRepo(db),
		Note:             NewNoteRepo(db),
	}
}

// Ping checks the database, used by /health.
func (r *Repository) Ping() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// BeginTx opens a transaction; pair with WithTx.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx returns a Repository whose members all run inside tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
