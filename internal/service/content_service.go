package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

const resourceContent = "content-queue"

type contentAPI interface {
	ListContent(ctx context.Context, token string, q models.ListQuery) ([]models.ContentItem, error)
	GetContent(ctx context.Context, token string, id int) (*models.ContentItem, error)
	SetContentStatus(ctx context.Context, token string, id int, status models.ContentStatus) (*models.ContentItem, error)
}

// ContentItemView decorates a queue item with the actions the console offers
// from its current status, so the UI never renders an illegal button.
type ContentItemView struct {
	models.ContentItem
	AllowedActions []models.ContentStatus `json:"allowed_actions"`
}

// ContentService lists the review queue and relays status changes.
type ContentService struct {
	api     contentAPI
	lists   *listview.Store
	metrics *MetricsService
	log     *zap.Logger
}

// NewContentService creates the content service.
func NewContentService(api contentAPI, lists *listview.Store, metrics *MetricsService, log *zap.Logger) *ContentService {
	return &ContentService{api: api, lists: lists, metrics: metrics, log: log}
}

// List returns one cached page of queue items with their allowed actions.
func (s *ContentService) List(ctx context.Context, sess *models.Session, q models.ListQuery) ([]ContentItemView, *models.PageInfo, error) {
	items, err := fetchList(ctx, s.lists, s.metrics, resourceContent, q.Key(), func(ctx context.Context) ([]models.ContentItem, error) {
		return s.api.ListContent(ctx, sess.Token, q)
	})
	if err != nil {
		return nil, nil, err
	}

	views := make([]ContentItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ContentItemView{ContentItem: item, AllowedActions: item.Status.AllowedTransitions()})
	}
	return views, models.NewPageInfo(q, len(items)), nil
}

// SetStatus relays a status change after checking the transition locally.
// pending moves to approved or rejected, approved moves to published;
// rejected and published are terminal here. The platform API still enforces
// its own rules on whatever is relayed.
func (s *ContentService) SetStatus(ctx context.Context, sess *models.Session, id int, next models.ContentStatus) (*ContentItemView, error) {
	switch next {
	case models.ContentApproved, models.ContentRejected, models.ContentPublished:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", next))
	}

	current, err := s.api.GetContent(ctx, sess.Token, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, appErrors.Clone(appErrors.ErrInvalidTransition,
			fmt.Sprintf("cannot move content from %q to %q", current.Status, next))
	}

	updated, err := s.api.SetContentStatus(ctx, sess.Token, id, next)
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceContent)
	s.log.Info("content_status_changed",
		zap.Int("content_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
	)
	return &ContentItemView{ContentItem: *updated, AllowedActions: updated.Status.AllowedTransitions()}, nil
}
