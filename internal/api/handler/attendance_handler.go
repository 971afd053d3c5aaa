package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// AttendanceHandler session registers and presence statistics
type AttendanceHandler struct {
	svc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// Record PUT /api/v1/sessions/:id/attendance
// Rows already present for a player are overwritten.
func (h *AttendanceHandler) Record(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.svc.Record(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, list)
}

// ListBySession GET /api/v1/sessions/:id/attendance
func (h *AttendanceHandler) ListBySession(c *gin.Context) {
	list, err := h.svc.ListBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, list)
}

// List GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, list)
}

// PlayerSummary GET /api/v1/players/:id/attendance-summary
func (h *AttendanceHandler) PlayerSummary(c *gin.Context) {
	var req dto.AttendanceSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	summary, err := h.svc.PlayerSummary(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleAttendanceError(c, err)
		return
	}

	response.OK(c, summary)
}

func handleAttendanceError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 17001, "session not found")
	case errors.Is(err, service.ErrPlayerNotFound):
		response.NotFound(c, 15001, "player not found")
	case errors.Is(err, service.ErrPlayerNotInCategory):
		response.BadRequest(c, 19001, err.Error())
	case errors.Is(err, service.ErrDuplicatePlayer):
		response.BadRequest(c, 19002, err.Error())
	default:
		response.InternalError(c)
	}
}
