package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// StaffHandler coaching and support staff
type StaffHandler struct {
	svc service.StaffService
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc service.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

// ListStaff GET /api/v1/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	var req dto.StaffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// GetStaff GET /api/v1/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	s, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleStaffError(c, err)
		return
	}

	response.OK(c, s)
}

// CreateStaff POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleStaffError(c, err)
		return
	}

	response.Created(c, s)
}

// UpdateStaff PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleStaffError(c, err)
		return
	}

	response.OK(c, s)
}

// DeleteStaff DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		handleStaffError(c, err)
		return
	}

	response.OK(c, nil)
}

func handleStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 16001, "staff member not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	default:
		response.InternalError(c)
	}
}
