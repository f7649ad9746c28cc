package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/pkg/config"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// SiteHandler handles the managed-sites endpoints.
type SiteHandler struct {
	service *service.SiteService
	lists   config.ListConfig
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(svc *service.SiteService, lists config.ListConfig) *SiteHandler {
	return &SiteHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List sites
// @Description List managed WordPress sites with search and pagination
// @Tags Sites
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param q query string false "Search term"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /sites [get]
func (h *SiteHandler) List(c *gin.Context) {
	q := parseListQuery(c, h.lists.DefaultLimit, h.lists.MaxLimit)

	sites, pagination, err := h.service.List(c.Request.Context(), sessionFromContext(c), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, sites, pagination)
}

// Create godoc
// @Summary Register site
// @Description Register a new WordPress site
// @Tags Sites
// @Accept json
// @Produce json
// @Param payload body service.CreateSiteRequest true "Site payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /sites [post]
func (h *SiteHandler) Create(c *gin.Context) {
	var req service.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid site payload"))
		return
	}

	site, err := h.service.Create(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, site)
}

// Update godoc
// @Summary Update site
// @Description Update a site's auto-publish settings
// @Tags Sites
// @Accept json
// @Produce json
// @Param id path int true "Site ID"
// @Param payload body service.UpdateSiteRequest true "Settings payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /sites/{id} [patch]
func (h *SiteHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid site id"))
		return
	}

	var req service.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid settings payload"))
		return
	}

	site, err := h.service.Update(c.Request.Context(), sessionFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, site, nil)
}
