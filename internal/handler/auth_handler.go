package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/service"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// AuthHandler wires the login relay to HTTP.
type AuthHandler struct {
	service *service.AuthService
	cookies *CookieHelper
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{service: svc, cookies: cookies}
}

// Login godoc
// @Summary Log in
// @Description Relay credentials to the platform API and start a console session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.cookies.Set(c, sess.ID)
	response.JSON(c, http.StatusOK, sess.Identity, nil)
}

// Logout godoc
// @Summary Log out
// @Description Destroy the console session and invalidate the upstream token
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessionFromContext(c)

	if err := h.service.Logout(c.Request.Context(), sess); err != nil {
		response.Error(c, err)
		return
	}

	h.cookies.Clear(c)
	response.NoContent(c)
}

// Me godoc
// @Summary Current identity
// @Description Returns the authenticated user's identity
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := sessionFromContext(c)
	if sess == nil || sess.Identity == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, sess.Identity, nil)
}
