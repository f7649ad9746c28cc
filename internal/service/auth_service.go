package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/session"
	"github.com/contentpilot/console-api/internal/upstream"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

type authAPI interface {
	Login(ctx context.Context, email, password string) (*upstream.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*models.Identity, error)
}

// AuthService relays credentials to the platform API and owns the console
// session lifecycle around the issued token.
type AuthService struct {
	api      authAPI
	sessions *session.Store
	validate *validator.Validate
	log      *zap.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(api authAPI, sessions *session.Store, validate *validator.Validate, log *zap.Logger) *AuthService {
	return &AuthService{api: api, sessions: sessions, validate: validate, log: log}
}

// Login validates the payload, exchanges credentials upstream and mints a
// console session around the returned token. Upstream rejection text is
// passed through untouched.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "email and password are required")
	}

	grant, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// Resolve the identity eagerly so the first page render already knows the
	// role. A probe failure is tolerated; the resolver retries on next request.
	identity, err := s.api.Me(ctx, grant.AccessToken)
	if err != nil {
		s.log.Warn("identity_probe_after_login_failed", zap.Error(err))
		identity = nil
	}

	sess, err := s.sessions.Create(ctx, grant.AccessToken, identity)
	if err != nil {
		return nil, err
	}

	s.log.Info("login", zap.String("session_id", sess.ID), zap.String("email", req.Email))
	return sess, nil
}

// Logout invalidates the token upstream (best effort) and destroys the
// console session. The session is gone even when the upstream call fails.
func (s *AuthService) Logout(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.api.Logout(ctx, sess.Token); err != nil {
		s.log.Warn("upstream_logout_failed", zap.String("session_id", sess.ID), zap.Error(err))
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return err
	}
	s.log.Info("logout", zap.String("session_id", sess.ID))
	return nil
}
