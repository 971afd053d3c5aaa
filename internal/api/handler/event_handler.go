package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// EventHandler matches, tournaments and club meetings
type EventHandler struct {
	svc service.EventService
	// swapped in tests
	fetch func(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc, fetch: service.FetchICSContent}
}

// ListEvents GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		handleEventError(c, err)
		return
	}

	response.OK(c, list)
}

// GetEvent GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleEventError(c, err)
		return
	}

	response.OK(c, e)
}

// CreateEvent POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	e, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleEventError(c, err)
		return
	}

	response.Created(c, e)
}

// UpdateEvent PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleEventError(c, err)
		return
	}

	response.OK(c, e)
}

// DeleteEvent DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleEventError(c, err)
		return
	}

	response.OK(c, nil)
}

// ImportEvents POST /api/v1/events/import
//
// Two ways to supply the fixture calendar:
//   - multipart/form-data with the .ics in field "file"
//   - form or query field "url" (http, https or webcal)
//
// category_id and event_type apply to every imported event.
func (h *EventHandler) ImportEvents(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ImportEventsRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		badRequest(c, err)
		return
	}

	var content io.ReadCloser
	if file, _, err := c.Request.FormFile("file"); err == nil {
		content = file
	} else if req.URL != "" {
		body, err := h.fetch(c.Request.Context(), req.URL)
		if err != nil {
			response.ErrorWithDetails(c, http.StatusBadGateway, 18003, "cannot fetch calendar", err.Error())
			return
		}
		content = body
	} else {
		response.BadRequest(c, 18002, "upload an .ics file or provide a calendar url")
		return
	}
	defer content.Close()

	result, err := h.svc.ImportICS(c.Request.Context(), &req, content, callerID)
	if err != nil {
		handleEventError(c, err)
		return
	}

	response.Created(c, result)
}

func handleEventError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 18001, "event not found")
	case errors.Is(err, service.ErrICSInvalid):
		response.ErrorWithDetails(c, http.StatusBadRequest, 18004, "invalid calendar file", err.Error())
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	default:
		response.InternalError(c)
	}
}
