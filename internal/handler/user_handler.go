package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/service"
	"github.com/contentpilot/console-api/pkg/config"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// UserHandler handles the user administration endpoints.
type UserHandler struct {
	service *service.UserService
	lists   config.ListConfig
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService, lists config.ListConfig) *UserHandler {
	return &UserHandler{service: svc, lists: lists}
}

// List godoc
// @Summary List users
// @Description List platform accounts with optional search
// @Tags Users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param q query string false "Search term"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	q := parseListQuery(c, h.lists.DefaultLimit, h.lists.MaxLimit)

	users, pagination, err := h.service.List(c.Request.Context(), sessionFromContext(c), q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, users, pagination)
}

// Roles godoc
// @Summary List assignable roles
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/roles [get]
func (h *UserHandler) Roles(c *gin.Context) {
	roles, err := h.service.Roles(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, roles, nil)
}

// AssignRole godoc
// @Summary Assign a role
// @Description Assign a named role to an account
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.AssignRoleRequest true "Assignment payload"
// @Success 204 "No Content"
// @Failure 400 {object} response.Envelope
// @Router /users/assign-role [post]
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req service.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	if err := h.service.AssignRole(c.Request.Context(), sessionFromContext(c), req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ToggleActive godoc
// @Summary Toggle account status
// @Description Flip an account between active and deactivated
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 422 {object} response.Envelope
// @Router /users/{id}/toggle-active [patch]
func (h *UserHandler) ToggleActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid user id"))
		return
	}

	if err := h.service.ToggleActive(c.Request.Context(), sessionFromContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
