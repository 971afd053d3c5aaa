package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// InjuryHandler injury log
type InjuryHandler struct {
	svc service.InjuryService
}

// NewInjuryHandler creates an InjuryHandler.
func NewInjuryHandler(svc service.InjuryService) *InjuryHandler {
	return &InjuryHandler{svc: svc}
}

// ListInjuries GET /api/v1/injuries
func (h *InjuryHandler) ListInjuries(c *gin.Context) {
	var req dto.InjuryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.list(c, &req)
}

// ListByPlayer GET /api/v1/players/:id/injuries
func (h *InjuryHandler) ListByPlayer(c *gin.Context) {
	var req dto.InjuryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.PlayerID = c.Param("id")
	h.list(c, &req)
}

func (h *InjuryHandler) list(c *gin.Context, req *dto.InjuryListRequest) {
	list, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		handleInjuryError(c, err)
		return
	}

	response.OK(c, list)
}

// GetInjury GET /api/v1/injuries/:id
func (h *InjuryHandler) GetInjury(c *gin.Context) {
	inj, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleInjuryError(c, err)
		return
	}

	response.OK(c, inj)
}

// CreateInjury POST /api/v1/injuries
func (h *InjuryHandler) CreateInjury(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inj, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleInjuryError(c, err)
		return
	}

	response.Created(c, inj)
}

// UpdateInjury PUT /api/v1/injuries/:id
func (h *InjuryHandler) UpdateInjury(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInjuryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inj, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleInjuryError(c, err)
		return
	}

	response.OK(c, inj)
}

// MarkReturned PUT /api/v1/injuries/:id/return
// An empty body closes the injury today.
func (h *InjuryHandler) MarkReturned(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MarkReturnedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	inj, err := h.svc.MarkReturned(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleInjuryError(c, err)
		return
	}

	response.OK(c, inj)
}

// DeleteInjury DELETE /api/v1/injuries/:id
func (h *InjuryHandler) DeleteInjury(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleInjuryError(c, err)
		return
	}

	response.OK(c, nil)
}

func handleInjuryError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrInjuryNotFound):
		response.NotFound(c, 20001, "injury not found")
	case errors.Is(err, service.ErrPlayerNotFound):
		response.NotFound(c, 15001, "player not found")
	case errors.Is(err, service.ErrInjuryAlreadyClosed):
		response.Conflict(c, 20002, err.Error())
	case errors.Is(err, service.ErrReturnBeforeInjury):
		response.BadRequest(c, 20003, err.Error())
	default:
		response.InternalError(c)
	}
}
