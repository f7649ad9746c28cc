package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

const resourceAdmins = "admins"

type adminAPI interface {
	ListAdmins(ctx context.Context, token string) ([]models.Admin, error)
	AddAdmin(ctx context.Context, token string, userID int) (*models.Admin, error)
	RemoveAdmin(ctx context.Context, token string, userID int) error
}

// AdminService manages the admin user-id allowlist.
type AdminService struct {
	api      adminAPI
	lists    *listview.Store
	metrics  *MetricsService
	validate *validator.Validate
	log      *zap.Logger
}

// NewAdminService creates the admin service.
func NewAdminService(api adminAPI, lists *listview.Store, metrics *MetricsService, validate *validator.Validate, log *zap.Logger) *AdminService {
	return &AdminService{api: api, lists: lists, metrics: metrics, validate: validate, log: log}
}

// List returns the allowlist (cached under a single key; it is small).
func (s *AdminService) List(ctx context.Context, sess *models.Session) ([]models.Admin, error) {
	return fetchList(ctx, s.lists, s.metrics, resourceAdmins, "all", func(ctx context.Context) ([]models.Admin, error) {
		return s.api.ListAdmins(ctx, sess.Token)
	})
}

// AddAdminRequest grants a user admin allowlist membership.
type AddAdminRequest struct {
	UserID int `json:"user_id" validate:"required,gte=1"`
}

// Add validates and relays an allowlist grant, then invalidates the list.
func (s *AdminService) Add(ctx context.Context, sess *models.Session, req AddAdminRequest) (*models.Admin, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "user_id must be a positive integer")
	}

	admin, err := s.api.AddAdmin(ctx, sess.Token, req.UserID)
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceAdmins)
	s.log.Info("admin_added", zap.Int("user_id", req.UserID))
	return admin, nil
}

// Remove revokes allowlist membership, then invalidates the list.
func (s *AdminService) Remove(ctx context.Context, sess *models.Session, userID int) error {
	if err := s.api.RemoveAdmin(ctx, sess.Token, userID); err != nil {
		return err
	}

	s.lists.Invalidate(resourceAdmins)
	s.log.Info("admin_removed", zap.Int("user_id", userID))
	return nil
}
