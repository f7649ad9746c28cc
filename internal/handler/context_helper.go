package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contentpilot/console-api/internal/middleware"
	"github.com/contentpilot/console-api/internal/models"
)

func sessionFromContext(c *gin.Context) *models.Session {
	return middleware.SessionFromContext(c)
}

// parseListQuery reads the shared list parameters plus the named filter keys
// from the request query string.
func parseListQuery(c *gin.Context, defaultLimit, maxLimit int, filterKeys ...string) models.ListQuery {
	q := models.ListQuery{}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		q.Limit = limit
	}
	q.Search = c.Query("q")

	if len(filterKeys) > 0 {
		q.Filters = make(map[string]string, len(filterKeys))
		for _, key := range filterKeys {
			if value := c.Query(key); value != "" {
				q.Filters[key] = value
			}
		}
	}

	return q.Normalize(defaultLimit, maxLimit)
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
