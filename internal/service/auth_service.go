package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"brixia-rugby/backend/config"
	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/model"
	"brixia-rugby/backend/internal/repository"
	"brixia-rugby/backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrWrongOldPassword   = errors.New("old password is wrong")
	ErrSamePassword       = errors.New("new password must differ from the old one")
)

// AuthService authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessClaims *jwt.Claims, refreshToken string) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	SeedAdmin(ctx context.Context) error
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("lookup user failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// ────────────────────── RefreshToken ──────────────────────

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenRefresh {
		return nil, ErrInvalidToken
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist lookup failed", zap.Error(err))
		} else if revoked {
			return nil, ErrTokenRevoked
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("lookup user failed", zap.String("user_id", claims.UserID), zap.Error(err))
		return nil, err
	}

	// rotate: the used refresh token cannot be replayed
	s.revoke(ctx, claims)

	return s.issueTokens(user)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, accessClaims *jwt.Claims, refreshToken string) error {
	if accessClaims != nil {
		s.revoke(ctx, accessClaims)
	}
	if refreshToken != "" {
		if claims, err := s.jwtMgr.ParseToken(refreshToken); err == nil && claims.TokenType == jwt.TokenRefresh {
			s.revoke(ctx, claims)
		}
	}
	return nil
}

func (s *authService) revoke(ctx context.Context, claims *jwt.Claims) {
	if s.blacklist == nil {
		return
	}
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, jwt.RemainingTTL(claims)); err != nil {
		s.logger.Warn("blacklist token failed", zap.String("jti", claims.ID), zap.Error(err))
	}
}

// ────────────────────── Me ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("lookup user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.UserDetailResponse{
		UserResponse: toUserResponse(user),
		CreatedAt:    formatTimestamp(user.CreatedAt),
	}, nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}
	if req.OldPassword == req.NewPassword {
		return ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.MustChangePassword = false
	user.UpdatedBy = &userID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update password failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

// ────────────────────── SeedAdmin ──────────────────────

// SeedAdmin creates the bootstrap administrator on an empty users table.
// It is a no-op when no admin credentials are configured.
func (s *authService) SeedAdmin(ctx context.Context) error {
	email := strings.TrimSpace(s.cfg.Auth.AdminEmail)
	if email == "" {
		return nil
	}

	n, err := s.repo.User.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:               "Administrator",
		Email:              email,
		PasswordHash:       string(hash),
		Role:               model.RoleAdmin,
		MustChangePassword: true,
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("bootstrap admin created", zap.String("email", email))
	return nil
}

// ────────────────────── helpers ──────────────────────

func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 user.UserID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		MustChangePassword: user.MustChangePassword,
	}
}
