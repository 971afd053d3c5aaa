package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// NoteHandler staff notes on players
type NoteHandler struct {
	svc service.NoteService
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc service.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// ListNotes GET /api/v1/notes?player_id=
func (h *NoteHandler) ListNotes(c *gin.Context) {
	var req dto.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		handleNoteError(c, err)
		return
	}

	response.OK(c, list)
}

// GetNote GET /api/v1/notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	n, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleNoteError(c, err)
		return
	}

	response.OK(c, n)
}

// CreateNote POST /api/v1/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleNoteError(c, err)
		return
	}

	response.Created(c, n)
}

// UpdateNote PUT /api/v1/notes/:id (author or admin)
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID, role)
	if err != nil {
		handleNoteError(c, err)
		return
	}

	response.OK(c, n)
}

// DeleteNote DELETE /api/v1/notes/:id (author or admin)
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID, role); err != nil {
		handleNoteError(c, err)
		return
	}

	response.OK(c, nil)
}

func handleNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		response.NotFound(c, 21001, "note not found")
	case errors.Is(err, service.ErrNoteForbidden):
		response.Forbidden(c, 21002, err.Error())
	case errors.Is(err, service.ErrPlayerNotFound):
		response.NotFound(c, 15001, "player not found")
	default:
		response.InternalError(c)
	}
}
