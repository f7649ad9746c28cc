package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/rbac"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/response"
)

// RequireCapability gates a route group on one capability flag. Anonymous
// requests get 401, authenticated ones without the capability get 403,
// before any upstream round trip is made.
func RequireCapability(check func(rbac.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if sess == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		caps := rbac.ForIdentity(sess.Identity)
		if !check(caps) {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
