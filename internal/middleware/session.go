package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/session"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/logger"
	"github.com/contentpilot/console-api/pkg/response"
)

// ContextSessionKey is the gin context key storing the resolved session.
const ContextSessionKey = "currentSession"

// WithSession resolves the session cookie on every request and stores the
// result (possibly nil = anonymous) on the context. It never blocks the
// request: public endpoints serve anonymous visitors, and gating happens in
// RequireAuth / capability middleware further down the chain.
func WithSession(resolver *session.Resolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			c.Next()
			return
		}

		sess, err := resolver.Resolve(c.Request.Context(), cookie)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if sess != nil {
			c.Set(ContextSessionKey, sess)
			if sess.Identity != nil {
				c.Set(logger.ContextUserKey, sess.Identity.Email)
			}
		}
		c.Next()
	}
}

// RequireAuth blocks anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFromContext(c) == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the resolved session or nil for anonymous.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	sess, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return sess
}
