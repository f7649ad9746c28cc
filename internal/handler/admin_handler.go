package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/service"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// AdminHandler handles the administrator roster endpoints.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// List godoc
// @Summary List administrators
// @Tags Admins
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.service.List(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, admins, nil)
}

// Add godoc
// @Summary Grant administrator access
// @Tags Admins
// @Accept json
// @Produce json
// @Param payload body service.AddAdminRequest true "Grant payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admins [post]
func (h *AdminHandler) Add(c *gin.Context) {
	var req service.AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid admin payload"))
		return
	}

	admin, err := h.service.Add(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, admin)
}

// Remove godoc
// @Summary Revoke administrator access
// @Tags Admins
// @Produce json
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.Envelope
// @Router /admins/{id} [delete]
func (h *AdminHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid user id"))
		return
	}

	if err := h.service.Remove(c.Request.Context(), sessionFromContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
