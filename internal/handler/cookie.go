package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/pkg/config"
)

// CookieHelper manages the console session cookie. The cookie is always
// HttpOnly: scripts never see the session ID, and the upstream token never
// reaches the browser at all.
type CookieHelper struct {
	cfg config.SessionConfig
}

// NewCookieHelper creates a cookie helper from the session configuration.
func NewCookieHelper(cfg config.SessionConfig) *CookieHelper {
	return &CookieHelper{cfg: cfg}
}

// Set writes the session cookie.
func (h *CookieHelper) Set(c *gin.Context, sessionID string) {
	h.write(c, sessionID, int(h.cfg.TTL.Seconds()))
}

// Clear removes the session cookie.
func (h *CookieHelper) Clear(c *gin.Context) {
	h.write(c, "", -1)
}

func (h *CookieHelper) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, value, maxAge, h.cfg.CookiePath, h.cfg.Domain, h.cfg.Secure, true)
}
