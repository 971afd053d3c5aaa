package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"brixia-rugby/backend/internal/dto"
	"brixia-rugby/backend/internal/service"
	"brixia-rugby/backend/pkg/response"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler file downloads
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// AttendanceCSV GET /api/v1/export/attendance.csv?category_id=&from=&to=
func (h *ExportHandler) AttendanceCSV(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	buf, filename, err := h.exportSvc.AttendanceCSV(c.Request.Context(), &req)
	if err != nil {
		handleExportError(c, err)
		return
	}

	sendFile(c, buf, filename, contentTypeCSV)
}

// RosterXLSX GET /api/v1/export/roster.xlsx?category_id=
func (h *ExportHandler) RosterXLSX(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		response.BadRequest(c, 10001, "category_id is required")
		return
	}

	buf, filename, err := h.exportSvc.RosterXLSX(c.Request.Context(), categoryID)
	if err != nil {
		handleExportError(c, err)
		return
	}

	sendFile(c, buf, filename, contentTypeXLSX)
}

// CalendarICS GET /api/v1/export/calendar.ics?category_id=&from=&to=
func (h *ExportHandler) CalendarICS(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	buf, filename, err := h.exportSvc.CalendarICS(c.Request.Context(), &req)
	if err != nil {
		handleExportError(c, err)
		return
	}

	sendFile(c, buf, filename, contentTypeICS)
}

func sendFile(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func handleExportError(c *gin.Context, err error) {
	if handleCommonError(c, err) {
		return
	}
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 13001, "category not found")
	case errors.Is(err, service.ErrExportNoPlayers):
		response.BadRequest(c, 22001, err.Error())
	default:
		response.InternalError(c)
	}
}
