package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// AuthHandler authentication endpoints
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "wrong email or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// RefreshToken POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			response.Unauthorized(c, 11002, "refresh token invalid or expired")
		case errors.Is(err, service.ErrTokenRevoked):
			response.Unauthorized(c, 11003, "refresh token revoked")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout POST /api/v1/auth/logout
// The body is optional; when it carries the refresh token that is revoked too.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.authSvc.Logout(c.Request.Context(), claims, req.RefreshToken); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// GetCurrentUser GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// ChangePassword PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongOldPassword):
			response.BadRequest(c, 11004, "old password is wrong")
		case errors.Is(err, service.ErrSamePassword):
			response.BadRequest(c, 11005, "new password must differ from the old one")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
