package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/jwt"
	"brixia-rugby/backend/pkg/response"
)

// MustGetUserID reads the caller id set by JWTAuth. On false a 401 has
// already been written and the handler should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetRole reads the caller role set by JWTAuth.
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, "role")
}

// MustGetClaims reads the parsed access token set by JWTAuth.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	return claims, true
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// badRequest binding failure with the validator message as details.
func badRequest(c *gin.Context, err error) {
	response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "invalid parameters", err.Error())
}

// handleCommonError maps the errors shared by every module. It reports
// whether a response was written.
func handleCommonError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrInvalidDateRange):
		response.BadRequest(c, 10006, err.Error())
	case errors.Is(err, service.ErrVersionConflict):
		response.Conflict(c, 10007, err.Error())
	default:
		return false
	}
	return true
}
