package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// SessionHandler training sessions and their generation
type SessionHandler struct {
	svc service.SessionService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Generate POST /api/v1/sessions/generate
//
// Expands the category's training locations into dated sessions and stores
// them. Sessions that already exist are counted as skipped.
func (h *SessionHandler) Generate(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), &req, callerID)
	if err != nil {
		handleSessionError(c, err)
		return
	}

	response.Created(c, result)
}

// ListSessions GET /api/v1/sessions
func (h *SessionHandler) ListSessions(c *gin.Context) {
	var req dto.SessionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		handleSessionError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetSession GET /api/v1/sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleSessionError(c, err)
		return
	}

	response.OK(c, s)
}

// CreateSession POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleSessionError(c, err)
		return
	}

	response.Created(c, s)
}

// UpdateSession PUT /api/v1/sessions/:id
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleSessionError(c, err)
		return
	}

	response.OK(c, s)
}

// DeleteSession DELETE /api/v1/sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleSessionError(c, err)
		return
	}

	response.OK(c, nil)
}

func handleSessionError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 17001, "session not found")
	case errors.Is(err, service.ErrSessionExists):
		response.Conflict(c, 17004, err.Error())
	case errors.Is(err, service.ErrNoTrainingLocation):
		response.BadRequest(c, 17002, err.Error())
	case errors.Is(err, service.ErrInvalidMode):
		response.BadRequest(c, 17003, err.Error())
	case errors.Is(err, service.ErrInvalidWeekday):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	default:
		response.InternalError(c)
	}
}
