package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// CategoryHandler age categories (U14, U16, ...)
type CategoryHandler struct {
	svc service.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var req dto.CategoryListRequest
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

// GetCategory GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	response.OK(c, cat)
}

// CreateCategory POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cat, err := h.svc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	response.Created(c, cat)
}

// UpdateCategory PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cat, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleCategoryError(c, err)
		return
	}

	response.OK(c, cat)
}

// DeleteCategory DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		handleCategoryError(c, err)
		return
	}

	response.OK(c, nil)
}

func handleCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	case errors.Is(err, service.ErrCategoryCodeExists):
		response.Conflict(c, 13002, "category code already in use")
	default:
		response.InternalError(c)
	}
}
