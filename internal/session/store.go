// Package session owns the console's server-side sessions. The browser holds
// an opaque HttpOnly cookie; the upstream bearer token and the last resolved
// identity live in Redis behind it. This is the single auth transport: tokens
// never reach browser storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

const keyPrefix = "console:session:"

// Store persists sessions in Redis with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore builds a session store. ttl is the upper bound on session
// lifetime; individual sessions may expire sooner when the upstream token
// does.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create mints a new session around an upstream token. The session TTL is the
// smaller of the configured lifetime and the token's own exp claim, so a
// console session never outlives the token it wraps.
func (s *Store) Create(ctx context.Context, token string, identity *models.Identity) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		ID:         uuid.NewString(),
		Token:      token,
		Identity:   identity,
		ResolvedAt: now,
		CreatedAt:  now,
	}

	ttl := s.ttl
	if tokenTTL, ok := tokenLifetime(token, now); ok && tokenTTL < ttl {
		ttl = tokenTTL
	}
	if ttl <= 0 {
		return nil, appErrors.New(appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "token already expired")
	}

	if err := s.write(ctx, sess, ttl); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a session by ID. A missing or expired session returns (nil, nil):
// anonymous is a normal state, not an error.
func (s *Store) Get(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, nil
	}
	raw, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load session")
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode session")
	}
	return &sess, nil
}

// Update rewrites a session record preserving its remaining TTL. When the
// remaining TTL cannot be read, the fallback is still bounded by the token's
// exp claim so a rewrite never extends a session past its token.
func (s *Store) Update(ctx context.Context, sess *models.Session) error {
	remaining, err := s.rdb.TTL(ctx, keyPrefix+sess.ID).Result()
	if err != nil || remaining <= 0 {
		remaining = s.ttl
		if tokenTTL, ok := tokenLifetime(sess.Token, time.Now().UTC()); ok && tokenTTL < remaining {
			remaining = tokenTTL
		}
		if remaining <= 0 {
			return s.Delete(ctx, sess.ID)
		}
	}
	return s.write(ctx, sess, remaining)
}

// Delete destroys a session. Deleting an absent session is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "delete session")
	}
	return nil
}

func (s *Store) write(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode session")
	}
	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, raw, ttl).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "store session")
	}
	return nil
}

// tokenLifetime reads the exp claim without verifying the signature. The
// console holds no upstream signing key; verification happens upstream on
// every relayed request, this only aligns cookie lifetime with the token.
func tokenLifetime(token string, now time.Time) (time.Duration, bool) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return exp.Time.Sub(now), true
}
