package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/nav"
	"github.com/contentpilot/console-api/internal/rbac"
	"github.com/contentpilot/console-api/pkg/response"
)

// SessionHandler serves the bootstrap payload every page loads first:
// identity, capability flags and the navigation menu in one round trip.
type SessionHandler struct{}

// NewSessionHandler creates a new session handler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// SessionView is the bootstrap payload. User is null for anonymous visitors;
// that is a normal state and ships with HTTP 200, never an error banner.
type SessionView struct {
	User         *models.Identity  `json:"user"`
	Capabilities rbac.Capabilities `json:"capabilities"`
	Menu         []nav.Entry       `json:"menu"`
}

// Get godoc
// @Summary Session bootstrap
// @Description Identity, capabilities and navigation for the current visitor
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	var identity *models.Identity
	if sess := sessionFromContext(c); sess != nil {
		identity = sess.Identity
	}

	caps := rbac.ForIdentity(identity)
	view := SessionView{
		User:         identity,
		Capabilities: caps,
		Menu:         nav.Compose(caps),
	}

	response.JSON(c, http.StatusOK, view, nil)
}

// Nav godoc
// @Summary Navigation menu
// @Description The menu entries visible to the current visitor
// @Tags Session
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /nav [get]
func (h *SessionHandler) Nav(c *gin.Context) {
	var identity *models.Identity
	if sess := sessionFromContext(c); sess != nil {
		identity = sess.Identity
	}

	response.JSON(c, http.StatusOK, nav.Compose(rbac.ForIdentity(identity)), nil)
}
