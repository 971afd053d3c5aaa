package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// PlayerHandler roster endpoints
type PlayerHandler struct {
	svc service.PlayerService
}

// NewPlayerHandler creates a PlayerHandler.
func NewPlayerHandler(svc service.PlayerService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// ListPlayers GET /api/v1/players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	var req dto.PlayerListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetPlayer GET /api/v1/players/:id
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlePlayerError(c, err)
		return
	}

	response.OK(c, p)
}

// CreatePlayer POST /api/v1/players
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handlePlayerError(c, err)
		return
	}

	response.Created(c, p)
}

// UpdatePlayer PUT /api/v1/players/:id
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handlePlayerError(c, err)
		return
	}

	response.OK(c, p)
}

// DeletePlayer DELETE /api/v1/players/:id
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		handlePlayerError(c, err)
		return
	}

	response.OK(c, nil)
}

func handlePlayerError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrPlayerNotFound):
		response.NotFound(c, 15001, "player not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	default:
		response.InternalError(c)
	}
}
