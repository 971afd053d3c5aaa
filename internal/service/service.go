package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/repository"
	"brixia-rugby/backend/pkg/jwt"
)

// TokenBlacklist revocation store for JWT IDs, backed by Redis.
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// Service aggregates every service.
type Service struct {
	Auth             AuthService
	User             UserService
	Category         CategoryService
	TrainingLocation TrainingLocationService
	Player           PlayerService
	Staff            StaffService
	Session          SessionService
	Event            EventService
	Attendance       AttendanceService
	Injury           InjuryService
	Note             NoteService
	Export           ExportService
}

// NewService wires every service. blacklist may be nil when Redis is off.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:             NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		User:             NewUserService(repo, logger),
		Category:         NewCategoryService(repo, logger),
		TrainingLocation: NewTrainingLocationService(repo, logger),
		Player:           NewPlayerService(repo, logger),
		Staff:            NewStaffService(repo, logger),
		Session:          NewSessionService(&cfg.Club, repo, logger),
		Event:            NewEventService(&cfg.Club, repo, logger),
		Attendance:       NewAttendanceService(repo, logger),
		Injury:           NewInjuryService(repo, logger),
		Note:             NewNoteService(repo, logger),
		Export:           NewExportService(&cfg.Club, repo, logger),
	}
}
