package session

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

// IdentityAPI is the slice of the upstream client the resolver needs.
type IdentityAPI interface {
	Me(ctx context.Context, token string) (*models.Identity, error)
}

// Resolver turns a session cookie value into an identity, re-probing the
// upstream "who am I" endpoint when the cached identity goes stale.
type Resolver struct {
	store       *Store
	api         IdentityAPI
	identityTTL time.Duration
	log         *zap.Logger
}

// NewResolver builds a resolver. identityTTL bounds how long a cached
// identity is trusted before the next upstream probe.
func NewResolver(store *Store, api IdentityAPI, identityTTL time.Duration, log *zap.Logger) *Resolver {
	return &Resolver{store: store, api: api, identityTTL: identityTTL, log: log}
}

// Resolve returns the session for a cookie value, or (nil, nil) for
// anonymous. Anonymous is an expected state and is never reported as an
// error; only infrastructure failures (session store down) surface as errors.
func (r *Resolver) Resolve(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := r.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	if sess.Identity != nil && time.Since(sess.ResolvedAt) < r.identityTTL {
		return sess, nil
	}

	identity, err := r.api.Me(ctx, sess.Token)
	if err != nil {
		appErr := appErrors.FromError(err)
		switch appErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			// Token revoked or expired upstream: the session is over.
			if delErr := r.store.Delete(ctx, sess.ID); delErr != nil {
				r.log.Warn("session_delete_failed", zap.String("session_id", sess.ID), zap.Error(delErr))
			}
			return nil, nil
		default:
			// Transient upstream failure: keep serving the cached identity
			// rather than logging everyone out on a blip.
			if sess.Identity != nil {
				return sess, nil
			}
			return nil, nil
		}
	}

	sess.Identity = identity
	sess.ResolvedAt = time.Now().UTC()
	if err := r.store.Update(ctx, sess); err != nil {
		r.log.Warn("session_refresh_failed", zap.String("session_id", sess.ID), zap.Error(err))
	}
	return sess, nil
}
