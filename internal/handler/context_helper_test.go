package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseListQueryDefaults(t *testing.T) {
	c := testContext(t, "/api/sites")

	q := parseListQuery(c, 10, 100)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Empty(t, q.Search)
}

func TestParseListQueryClampsBounds(t *testing.T) {
	c := testContext(t, "/api/sites?page=-2&limit=9999")

	q := parseListQuery(c, 10, 100)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.Limit)
}

func TestParseListQueryReadsNamedFilters(t *testing.T) {
	c := testContext(t, "/api/keywords?page=2&q=seo&status=active&category=tech&other=ignored")

	q := parseListQuery(c, 10, 100, "status", "category")
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, "seo", q.Search)
	assert.Equal(t, "active", q.Filters["status"])
	assert.Equal(t, "tech", q.Filters["category"])
	assert.NotContains(t, q.Filters, "other")
}

func TestParseListQueryIgnoresGarbageNumbers(t *testing.T) {
	c := testContext(t, "/api/sites?page=abc&limit=xyz")

	q := parseListQuery(c, 10, 100)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestPathID(t *testing.T) {
	c := testContext(t, "/api/sites/7")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, ok := pathID(c)
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	for _, raw := range []string{"0", "-4", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := pathID(c)
		assert.False(t, ok, "raw %q", raw)
	}
}
