package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/pkg/config"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// ContentHandler handles the review-queue endpoints.
type ContentHandler struct {
	service *service.ContentService
	lists   config.ListConfig
}

// NewContentHandler creates a new content handler.
func NewContentHandler(svc *service.ContentService, lists config.ListConfig) *ContentHandler {
	return &ContentHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List content queue
// @Description List queued content items with a status filter
// @Tags Content
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Status filter"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /content-queue [get]
func (h *ContentHandler) List(c *gin.Context) {
	q := parseListQuery(c, h.lists.DefaultLimit, h.lists.MaxLimit, "status")

	items, pagination, err := h.service.List(c.Request.Context(), sessionFromContext(c), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items, pagination)
}

// SetStatus godoc
// @Summary Change content status
// @Description Approve, reject or publish a queued item
// @Tags Content
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param payload body handler.SetStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /content-queue/{id}/status [patch]
func (h *ContentHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid content id"))
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	item, err := h.service.SetStatus(c.Request.Context(), sessionFromContext(c), id, models.ContentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, item, nil)
}

// SetStatusRequest carries the requested status change.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
