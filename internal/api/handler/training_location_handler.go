package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// TrainingLocationHandler weekly training slots of a category
type TrainingLocationHandler struct {
	svc service.TrainingLocationService
}

// NewTrainingLocationHandler creates a TrainingLocationHandler.
func NewTrainingLocationHandler(svc service.TrainingLocationService) *TrainingLocationHandler {
	return &TrainingLocationHandler{svc: svc}
}

// ListByCategory GET /api/v1/categories/:id/training-locations
func (h *TrainingLocationHandler) ListByCategory(c *gin.Context) {
	list, err := h.svc.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleTrainingLocationError(c, err)
		return
	}

	response.OK(c, list)
}

// Create POST /api/v1/categories/:id/training-locations
func (h *TrainingLocationHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTrainingLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	loc, err := h.svc.Create(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleTrainingLocationError(c, err)
		return
	}

	response.Created(c, loc)
}

// Update PUT /api/v1/training-locations/:id
func (h *TrainingLocationHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTrainingLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	loc, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleTrainingLocationError(c, err)
		return
	}

	response.OK(c, loc)
}

// Delete DELETE /api/v1/training-locations/:id
func (h *TrainingLocationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleTrainingLocationError(c, err)
		return
	}

	response.OK(c, nil)
}

func handleTrainingLocationError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrTrainingLocationNotFound):
		response.NotFound(c, 14001, "training location not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	case errors.Is(err, service.ErrInvalidWeekday):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrTrainingLocationClash):
		response.Conflict(c, 14004, err.Error())
	default:
		response.InternalError(c)
	}
}
