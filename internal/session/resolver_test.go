package session

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

type mockIdentityAPI struct {
	identity *models.Identity
	err      error
	calls    int
}

func (m *mockIdentityAPI) Me(ctx context.Context, token string) (*models.Identity, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.identity, nil
}

func TestResolverEmptyCookieIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	api := &mockIdentityAPI{}
	resolver := NewResolver(store, api, time.Minute, zap.NewNop())

	sess, err := resolver.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, 0, api.calls)
}

func TestResolverUnknownSessionIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	api := &mockIdentityAPI{}
	resolver := NewResolver(store, api, time.Minute, zap.NewNop())

	sess, err := resolver.Resolve(context.Background(), "forged-session-id")
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, 0, api.calls)
}

func TestResolverFreshIdentitySkipsProbe(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "opaque", &models.Identity{ID: 1, Role: &models.RoleRef{Name: "admin"}})
	require.NoError(t, err)

	api := &mockIdentityAPI{}
	resolver := NewResolver(store, api, time.Minute, zap.NewNop())

	sess, err := resolver.Resolve(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "admin", sess.Identity.RoleName())
	assert.Equal(t, 0, api.calls)
}

func TestResolverStaleIdentityReprobes(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "opaque", &models.Identity{ID: 1, Role: &models.RoleRef{Name: "viewer"}})
	require.NoError(t, err)

	// Zero identity TTL: every resolve goes upstream.
	api := &mockIdentityAPI{identity: &models.Identity{ID: 1, Role: &models.RoleRef{Name: "manager"}}}
	resolver := NewResolver(store, api, 0, zap.NewNop())

	sess, err := resolver.Resolve(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "manager", sess.Identity.RoleName())
	assert.Equal(t, 1, api.calls)

	// The refreshed identity is persisted for the next resolver.
	loaded, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "manager", loaded.Identity.RoleName())
}

func TestResolverRevokedTokenDestroysSession(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "opaque", &models.Identity{ID: 1})
	require.NoError(t, err)

	api := &mockIdentityAPI{err: appErrors.FromUpstream(http.StatusUnauthorized, "token revoked")}
	resolver := NewResolver(store, api, 0, zap.NewNop())

	sess, err := resolver.Resolve(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, sess)

	loaded, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded, "session record must be gone after a 401 probe")
}

func TestResolverTransientFailureServesCachedIdentity(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "opaque", &models.Identity{ID: 1, Role: &models.RoleRef{Name: "admin"}})
	require.NoError(t, err)

	api := &mockIdentityAPI{err: appErrors.FromUpstream(http.StatusBadGateway, "upstream down")}
	resolver := NewResolver(store, api, 0, zap.NewNop())

	sess, err := resolver.Resolve(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, sess, "an upstream blip must not log the user out")
	assert.Equal(t, "admin", sess.Identity.RoleName())
}

func TestResolverTransientFailureWithoutCachedIdentity(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "opaque", nil)
	require.NoError(t, err)

	api := &mockIdentityAPI{err: appErrors.FromUpstream(http.StatusBadGateway, "upstream down")}
	resolver := NewResolver(store, api, 0, zap.NewNop())

	sess, err := resolver.Resolve(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, sess)
}
