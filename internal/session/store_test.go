package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentpilot/console-api/internal/models"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() }) //nolint:errcheck
	return NewStore(rdb, ttl), mr
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStoreCreateAndGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	identity := &models.Identity{ID: 7, Email: "admin@example.com", Role: &models.RoleRef{Name: "admin"}}
	sess, err := store.Create(ctx, signedToken(t, time.Now().Add(2*time.Hour)), identity)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, sess.Token, loaded.Token)
	assert.Equal(t, "admin@example.com", loaded.Identity.Email)
	assert.Equal(t, "admin", loaded.Identity.RoleName())
}

func TestStoreGetMissingIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	sess, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, sess)

	sess, err = store.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStoreSessionTTLBoundedByTokenExpiry(t *testing.T) {
	store, mr := newTestStore(t, 24*time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, signedToken(t, time.Now().Add(10*time.Minute)), nil)
	require.NoError(t, err)

	ttl := mr.TTL(keyPrefix + sess.ID)
	assert.LessOrEqual(t, ttl, 10*time.Minute)
	assert.Greater(t, ttl, 9*time.Minute)
}

func TestStoreCreateRejectsExpiredToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, err := store.Create(context.Background(), signedToken(t, time.Now().Add(-time.Minute)), nil)
	require.Error(t, err)
}

func TestStoreOpaqueTokenFallsBackToConfiguredTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "not-a-jwt", nil)
	require.NoError(t, err)

	ttl := mr.TTL(keyPrefix + sess.ID)
	assert.LessOrEqual(t, ttl, time.Hour)
	assert.Greater(t, ttl, 59*time.Minute)
}

func TestStoreUpdatePreservesRemainingTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "opaque", nil)
	require.NoError(t, err)

	mr.FastForward(30 * time.Minute)

	sess.Identity = &models.Identity{ID: 3}
	require.NoError(t, store.Update(ctx, sess))

	ttl := mr.TTL(keyPrefix + sess.ID)
	assert.LessOrEqual(t, ttl, 30*time.Minute)
}

func TestStoreUpdateFallbackTTLBoundedByTokenExpiry(t *testing.T) {
	store, mr := newTestStore(t, 24*time.Hour)
	ctx := context.Background()

	// No stored record, so the TTL lookup falls back. The rewrite must still
	// honor the token's expiry instead of the full configured lifetime.
	sess := &models.Session{
		ID:    "resurrected",
		Token: signedToken(t, time.Now().Add(10*time.Minute)),
	}
	require.NoError(t, store.Update(ctx, sess))

	ttl := mr.TTL(keyPrefix + sess.ID)
	assert.LessOrEqual(t, ttl, 10*time.Minute)
	assert.Greater(t, ttl, 9*time.Minute)
}

func TestStoreUpdateExpiredTokenDoesNotPersist(t *testing.T) {
	store, _ := newTestStore(t, 24*time.Hour)
	ctx := context.Background()

	sess := &models.Session{
		ID:    "expired",
		Token: signedToken(t, time.Now().Add(-time.Minute)),
	}
	require.NoError(t, store.Update(ctx, sess))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, "opaque", nil)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sess.ID))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, sess.ID))
}
