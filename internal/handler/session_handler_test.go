package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentpilot/console-api/internal/middleware"
	"github.com/contentpilot/console-api/internal/models"
)

type sessionViewEnvelope struct {
	Data struct {
		User         *models.Identity `json:"user"`
		Capabilities map[string]bool  `json:"capabilities"`
		Menu         []struct {
			Route string `json:"route"`
			Label string `json:"label"`
		} `json:"menu"`
	} `json:"data"`
}

func TestSessionBootstrapAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/session", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code, "anonymous bootstrap is a normal state, not an error")

	var envelope sessionViewEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Data.User)
	for name, enabled := range envelope.Data.Capabilities {
		assert.False(t, enabled, "capability %s must be off for anonymous", name)
	}
	require.Len(t, envelope.Data.Menu, 1)
	assert.Equal(t, "/", envelope.Data.Menu[0].Route)
}

func TestSessionBootstrapAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	c.Set(middleware.ContextSessionKey, &models.Session{
		ID:       "sess-1",
		Token:    "tok",
		Identity: &models.Identity{ID: 1, Email: "admin@example.com", Role: &models.RoleRef{Name: "admin"}},
	})

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope sessionViewEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data.User)
	assert.Equal(t, "admin@example.com", envelope.Data.User.Email)
	assert.True(t, envelope.Data.Capabilities["can_manage_admins"])
	assert.Len(t, envelope.Data.Menu, 8)
}

func TestSessionBootstrapViewerMenuIsFiltered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	c.Set(middleware.ContextSessionKey, &models.Session{
		Identity: &models.Identity{ID: 2, Role: &models.RoleRef{Name: "viewer"}},
	})

	handler.Get(c)

	var envelope sessionViewEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	routes := make([]string, 0, len(envelope.Data.Menu))
	for _, entry := range envelope.Data.Menu {
		routes = append(routes, entry.Route)
	}
	assert.Equal(t, []string{"/", "/audit-logs"}, routes)
	assert.False(t, envelope.Data.Capabilities["can_manage_sites"])
}

func TestNavEndpointAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/nav", nil)

	handler.Nav(c)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []struct {
			Route string `json:"route"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "/", envelope.Data[0].Route)
}
