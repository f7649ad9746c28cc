package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/pkg/response"
)

// AuditLogHandler serves the audit trail list and its downloadable exports.
type AuditLogHandler struct {
	service *service.AuditLogService
}

// NewAuditLogHandler creates a new audit-log handler.
func NewAuditLogHandler(svc *service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{service: svc}
}

// List godoc
// @Summary List audit logs
// @Description List audit entries filtered by action and time window
// @Tags AuditLogs
// @Produce json
// @Param action query string false "Action filter"
// @Param start query string false "Window start (RFC3339 or 2006-01-02T15:04:05)"
// @Param end query string false "Window end"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(c *gin.Context) {
	logs, err := h.service.List(c.Request.Context(), sessionFromContext(c), auditQueryFromRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, logs, nil)
}

// Export godoc
// @Summary Export audit logs
// @Description Download the filtered audit trail as CSV or PDF
// @Tags AuditLogs
// @Produce text/csv
// @Produce application/pdf
// @Param action query string false "Action filter"
// @Param start query string false "Window start"
// @Param end query string false "Window end"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 422 {object} response.Envelope
// @Router /audit-logs/export [get]
func (h *AuditLogHandler) Export(c *gin.Context) {
	body, contentType, filename, err := h.service.Export(
		c.Request.Context(),
		sessionFromContext(c),
		auditQueryFromRequest(c),
		c.Query("format"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

func auditQueryFromRequest(c *gin.Context) service.AuditLogQuery {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return service.AuditLogQuery{
		Action: c.Query("action"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Limit:  limit,
	}
}
