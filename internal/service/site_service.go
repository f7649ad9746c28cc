package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	"github.com/contentpilot/console-api/internal/upstream"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

const resourceSites = "sites"

type siteAPI interface {
	ListSites(ctx context.Context, token string, q models.ListQuery) ([]models.Site, error)
	CreateSite(ctx context.Context, token string, req upstream.SiteCreate) (*models.Site, error)
	UpdateSite(ctx context.Context, token string, id int, req upstream.SiteUpdate) (*models.Site, error)
}

// SiteService lists and mutates managed WordPress sites.
type SiteService struct {
	api      siteAPI
	lists    *listview.Store
	metrics  *MetricsService
	validate *validator.Validate
	log      *zap.Logger
}

// NewSiteService creates the site service.
func NewSiteService(api siteAPI, lists *listview.Store, metrics *MetricsService, validate *validator.Validate, log *zap.Logger) *SiteService {
	return &SiteService{api: api, lists: lists, metrics: metrics, validate: validate, log: log}
}

// List returns one cached page of sites.
func (s *SiteService) List(ctx context.Context, sess *models.Session, q models.ListQuery) ([]models.Site, *models.PageInfo, error) {
	sites, err := fetchList(ctx, s.lists, s.metrics, resourceSites, q.Key(), func(ctx context.Context) ([]models.Site, error) {
		return s.api.ListSites(ctx, sess.Token, q)
	})
	if err != nil {
		return nil, nil, err
	}
	return sites, models.NewPageInfo(q, len(sites)), nil
}

// CreateSiteRequest registers a new WordPress site.
type CreateSiteRequest struct {
	Name       string `json:"name" validate:"required"`
	WPURL      string `json:"wp_url" validate:"required,url"`
	WPUsername string `json:"wp_username" validate:"required"`
	WPPassword string `json:"wp_password" validate:"required"`
}

// Create validates and relays a site registration, then invalidates the list.
func (s *SiteService) Create(ctx context.Context, sess *models.Session, req CreateSiteRequest) (*models.Site, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "name, wp_url, wp_username and wp_password are required")
	}

	site, err := s.api.CreateSite(ctx, sess.Token, upstream.SiteCreate{
		Name:       req.Name,
		WPURL:      req.WPURL,
		WPUsername: req.WPUsername,
		WPPassword: req.WPPassword,
	})
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceSites)
	s.log.Info("site_created", zap.String("name", req.Name))
	return site, nil
}

// UpdateSiteRequest mutates a site's auto-publish settings.
type UpdateSiteRequest struct {
	IsAutoEnabled   *bool   `json:"is_auto_enabled"`
	ScheduleCron    *string `json:"schedule_cron"`
	DailyQuota      *int    `json:"daily_quota" validate:"omitempty,gte=0"`
	ActiveStartHour *int    `json:"active_start_hour" validate:"omitempty,gte=0,lte=23"`
	ActiveEndHour   *int    `json:"active_end_hour" validate:"omitempty,gte=0,lte=23"`
}

// Update validates and relays a partial site update, then invalidates the list.
func (s *SiteService) Update(ctx context.Context, sess *models.Session, id int, req UpdateSiteRequest) (*models.Site, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid auto-publish settings")
	}

	site, err := s.api.UpdateSite(ctx, sess.Token, id, upstream.SiteUpdate{
		IsAutoEnabled:   req.IsAutoEnabled,
		ScheduleCron:    req.ScheduleCron,
		DailyQuota:      req.DailyQuota,
		ActiveStartHour: req.ActiveStartHour,
		ActiveEndHour:   req.ActiveEndHour,
	})
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceSites)
	s.log.Info("site_updated", zap.Int("site_id", id))
	return site, nil
}
