package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/rbac"
	"github.com/contentpilot/console-api/internal/upstream"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

const resourceRoleApps = "role-applications"

type roleAppAPI interface {
	ListRoleApplications(ctx context.Context, token string) ([]models.RoleApplication, error)
	ListMyRoleApplications(ctx context.Context, token string) ([]models.RoleApplication, error)
	CreateRoleApplication(ctx context.Context, token string, req upstream.RoleApplicationCreate) (*models.RoleApplication, error)
	ReviewRoleApplication(ctx context.Context, token string, id int, req upstream.RoleApplicationReview) (*models.RoleApplication, error)
	DeleteRoleApplication(ctx context.Context, token string, id int) error
}

// RoleApplicationService handles self-service role requests and their review.
type RoleApplicationService struct {
	api      roleAppAPI
	lists    *listview.Store
	metrics  *MetricsService
	validate *validator.Validate
	log      *zap.Logger
}

// NewRoleApplicationService creates the role-application service.
func NewRoleApplicationService(api roleAppAPI, lists *listview.Store, metrics *MetricsService, validate *validator.Validate, log *zap.Logger) *RoleApplicationService {
	return &RoleApplicationService{api: api, lists: lists, metrics: metrics, validate: validate, log: log}
}

// ListAll returns every application (admin review view).
func (s *RoleApplicationService) ListAll(ctx context.Context, sess *models.Session) ([]models.RoleApplication, error) {
	return fetchList(ctx, s.lists, s.metrics, resourceRoleApps, "all", func(ctx context.Context) ([]models.RoleApplication, error) {
		return s.api.ListRoleApplications(ctx, sess.Token)
	})
}

// ListMine returns the caller's own applications, keyed per user so two
// users never share a cache entry.
func (s *RoleApplicationService) ListMine(ctx context.Context, sess *models.Session) ([]models.RoleApplication, error) {
	key := "mine"
	if sess.Identity != nil {
		key = fmt.Sprintf("mine:%d", sess.Identity.ID)
	}
	return fetchList(ctx, s.lists, s.metrics, resourceRoleApps, key, func(ctx context.Context) ([]models.RoleApplication, error) {
		return s.api.ListMyRoleApplications(ctx, sess.Token)
	})
}

// ApplyRequest is a self-service request for a higher role. An empty reason
// fails validation here, before any upstream call.
type ApplyRequest struct {
	RequestedRole string `json:"requested_role" validate:"required,oneof=manager admin"`
	Reason        string `json:"reason" validate:"required"`
}

// Apply validates and relays a role request, then invalidates the list. A
// request for a role the caller already holds (or outranks) is rejected
// locally, mirroring the platform rule.
func (s *RoleApplicationService) Apply(ctx context.Context, sess *models.Session, req ApplyRequest) (*models.RoleApplication, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "requested_role must be manager or admin and a reason is required")
	}

	current := sess.Identity.RoleName()
	if current == req.RequestedRole || rbac.CanManage(current, req.RequestedRole) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("you already have the %s role or higher", current))
	}

	app, err := s.api.CreateRoleApplication(ctx, sess.Token, upstream.RoleApplicationCreate{
		RequestedRole: req.RequestedRole,
		Reason:        req.Reason,
	})
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceRoleApps)
	s.log.Info("role_application_submitted", zap.String("requested_role", req.RequestedRole))
	return app, nil
}

// ReviewRequest is the admin decision on an application.
type ReviewRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"admin_notes"`
}

// Review validates and relays an admin decision, then invalidates both the
// application list and the user list (an approval changes a user's role).
func (s *RoleApplicationService) Review(ctx context.Context, sess *models.Session, id int, req ReviewRequest) (*models.RoleApplication, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status must be approved or rejected")
	}

	app, err := s.api.ReviewRoleApplication(ctx, sess.Token, id, upstream.RoleApplicationReview{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceRoleApps)
	s.lists.Invalidate(resourceUsers)
	s.log.Info("role_application_reviewed", zap.Int("application_id", id), zap.String("status", req.Status))
	return app, nil
}

// Delete withdraws an application, then invalidates the list.
func (s *RoleApplicationService) Delete(ctx context.Context, sess *models.Session, id int) error {
	if err := s.api.DeleteRoleApplication(ctx, sess.Token, id); err != nil {
		return err
	}

	s.lists.Invalidate(resourceRoleApps)
	s.log.Info("role_application_deleted", zap.Int("application_id", id))
	return nil
}
