package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

const (
	resourceUsers = "users"
	resourceRoles = "roles"
)

type userAPI interface {
	ListUsers(ctx context.Context, token string, q models.ListQuery) ([]models.User, error)
	ListRoles(ctx context.Context, token string) ([]models.RoleRecord, error)
	AssignRole(ctx context.Context, token string, userID int, roleName string) error
	ToggleUserActive(ctx context.Context, token string, userID int) error
}

// UserService administers platform accounts through the upstream API.
type UserService struct {
	api      userAPI
	lists    *listview.Store
	metrics  *MetricsService
	validate *validator.Validate
	log      *zap.Logger
}

// NewUserService creates the user service.
func NewUserService(api userAPI, lists *listview.Store, metrics *MetricsService, validate *validator.Validate, log *zap.Logger) *UserService {
	return &UserService{api: api, lists: lists, metrics: metrics, validate: validate, log: log}
}

// List returns one cached page of accounts.
func (s *UserService) List(ctx context.Context, sess *models.Session, q models.ListQuery) ([]models.User, *models.PageInfo, error) {
	users, err := fetchList(ctx, s.lists, s.metrics, resourceUsers, q.Key(), func(ctx context.Context) ([]models.User, error) {
		return s.api.ListUsers(ctx, sess.Token, q)
	})
	if err != nil {
		return nil, nil, err
	}
	return users, models.NewPageInfo(q, len(users)), nil
}

// Roles returns the assignable roles (cached under a single key).
func (s *UserService) Roles(ctx context.Context, sess *models.Session) ([]models.RoleRecord, error) {
	return fetchList(ctx, s.lists, s.metrics, resourceRoles, "all", func(ctx context.Context) ([]models.RoleRecord, error) {
		return s.api.ListRoles(ctx, sess.Token)
	})
}

// AssignRoleRequest moves a user onto a role.
type AssignRoleRequest struct {
	UserID   int    `json:"user_id" validate:"required,gt=0"`
	RoleName string `json:"role_name" validate:"required,oneof=admin manager viewer"`
}

// AssignRole validates and relays a role assignment, then invalidates the
// user list. Role caps and hierarchy checks stay upstream.
func (s *UserService) AssignRole(ctx context.Context, sess *models.Session, req AssignRoleRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "user_id and a known role_name are required")
	}

	if err := s.api.AssignRole(ctx, sess.Token, req.UserID, req.RoleName); err != nil {
		return err
	}

	s.lists.Invalidate(resourceUsers)
	s.log.Info("role_assigned", zap.Int("user_id", req.UserID), zap.String("role", req.RoleName))
	return nil
}

// ToggleActive flips a user's active flag. Deactivating your own account is
// rejected locally, mirroring the platform rule, so the cache stays warm.
func (s *UserService) ToggleActive(ctx context.Context, sess *models.Session, userID int) error {
	if sess.Identity != nil && sess.Identity.ID == userID {
		return appErrors.Clone(appErrors.ErrValidation, "cannot deactivate your own account")
	}

	if err := s.api.ToggleUserActive(ctx, sess.Token, userID); err != nil {
		return err
	}

	s.lists.Invalidate(resourceUsers)
	s.log.Info("user_active_toggled", zap.Int("user_id", userID))
	return nil
}
