package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/service"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// RoleApplicationHandler handles role upgrade requests.
type RoleApplicationHandler struct {
	service *service.RoleApplicationService
}

// NewRoleApplicationHandler creates a new role-application handler.
func NewRoleApplicationHandler(svc *service.RoleApplicationService) *RoleApplicationHandler {
	return &RoleApplicationHandler{service: svc}
}

// ListAll godoc
// @Summary List role applications
// @Description List every pending and resolved role application
// @Tags RoleApplications
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /role-applications [get]
func (h *RoleApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.service.ListAll(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, apps, nil)
}

// ListMine godoc
// @Summary List own role applications
// @Tags RoleApplications
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /role-applications/mine [get]
func (h *RoleApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.service.ListMine(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, apps, nil)
}

// Apply godoc
// @Summary Apply for a role
// @Description Submit a role upgrade request with a reason
// @Tags RoleApplications
// @Accept json
// @Produce json
// @Param payload body service.ApplyRequest true "Application payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /role-applications [post]
func (h *RoleApplicationHandler) Apply(c *gin.Context) {
	var req service.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid application payload"))
		return
	}

	app, err := h.service.Apply(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, app)
}

// Review godoc
// @Summary Review a role application
// @Description Approve or reject a pending application
// @Tags RoleApplications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body service.ReviewRequest true "Review payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /role-applications/{id}/review [patch]
func (h *RoleApplicationHandler) Review(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid application id"))
		return
	}

	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}

	app, err := h.service.Review(c.Request.Context(), sessionFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, app, nil)
}

// Delete godoc
// @Summary Withdraw a role application
// @Tags RoleApplications
// @Produce json
// @Param id path int true "Application ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /role-applications/{id} [delete]
func (h *RoleApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid application id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), sessionFromContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
