package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/pkg/config"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// KeywordHandler handles the tracked-keyword endpoints.
type KeywordHandler struct {
	service *service.KeywordService
	lists   config.ListConfig
}

// NewKeywordHandler creates a new keyword handler.
func NewKeywordHandler(svc *service.KeywordService, lists config.ListConfig) *KeywordHandler {
	return &KeywordHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List keywords
// @Description List tracked keywords with search, status and category filters
// @Tags Keywords
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param q query string false "Search term"
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /keywords [get]
func (h *KeywordHandler) List(c *gin.Context) {
	q := parseListQuery(c, h.lists.DefaultLimit, h.lists.MaxLimit, "status", "category")

	keywords, pagination, err := h.service.List(c.Request.Context(), sessionFromContext(c), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, keywords, pagination)
}

// Create godoc
// @Summary Track keyword
// @Description Track a new keyword for a site
// @Tags Keywords
// @Accept json
// @Produce json
// @Param payload body service.CreateKeywordRequest true "Keyword payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /keywords [post]
func (h *KeywordHandler) Create(c *gin.Context) {
	var req service.CreateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid keyword payload"))
		return
	}

	keyword, err := h.service.Create(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, keyword)
}

// Update godoc
// @Summary Update keyword
// @Description Update a tracked keyword
// @Tags Keywords
// @Accept json
// @Produce json
// @Param id path int true "Keyword ID"
// @Param payload body service.UpdateKeywordRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /keywords/{id} [patch]
func (h *KeywordHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid keyword id"))
		return
	}

	var req service.UpdateKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid update payload"))
		return
	}

	keyword, err := h.service.Update(c.Request.Context(), sessionFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, keyword, nil)
}

// Delete godoc
// @Summary Delete keyword
// @Description Stop tracking a keyword
// @Tags Keywords
// @Produce json
// @Param id path int true "Keyword ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /keywords/{id} [delete]
func (h *KeywordHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid keyword id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), sessionFromContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
