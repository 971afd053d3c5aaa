package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

// UserHandler account administration (admin only)
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// CreateUser POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.userSvc.CreateUser(c.Request.Context(), &req, callerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.Created(c, result)
}

// ListUsers GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// GetUser GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateUser PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// DeleteUser DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

// AssignRole PUT /api/v1/users/:id/role
func (h *UserHandler) AssignRole(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.userSvc.AssignRole(c.Request.Context(), c.Param("id"), &req, callerID); err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, nil)
}

// ResetPassword POST /api/v1/users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.userSvc.ResetPassword(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

// ImportUsers POST /api/v1/users/import (multipart, field "file", .xlsx)
func (h *UserHandler) ImportUsers(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 12010, "upload an .xlsx file in the file field")
		return
	}
	defer file.Close()

	rows, err := h.userSvc.ParseImportFile(file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImportNoData),
			errors.Is(err, service.ErrImportBadHeader),
			errors.Is(err, service.ErrImportTooManyRows):
			response.BadRequest(c, 12011, err.Error())
		default:
			response.ErrorWithDetails(c, http.StatusBadRequest, 12012, "cannot read spreadsheet", err.Error())
		}
		return
	}

	result, err := h.userSvc.ImportUsers(c.Request.Context(), rows, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, "user not found")
	case errors.Is(err, service.ErrEmailExists):
		response.Conflict(c, 12002, "email already registered")
	case errors.Is(err, service.ErrUserSelfDelete):
		response.BadRequest(c, 12003, "you cannot delete your own account")
	case errors.Is(err, service.ErrUserSelfRoleChange):
		response.BadRequest(c, 12004, "you cannot change your own role")
	default:
		response.InternalError(c)
	}
}
