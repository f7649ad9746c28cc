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

const resourceKeywords = "keywords"

type keywordAPI interface {
	ListKeywords(ctx context.Context, token string, q models.ListQuery) ([]models.Keyword, error)
	CreateKeyword(ctx context.Context, token string, req upstream.KeywordCreate) (*models.Keyword, error)
	UpdateKeyword(ctx context.Context, token string, id int, req upstream.KeywordUpdate) (*models.Keyword, error)
	DeleteKeyword(ctx context.Context, token string, id int) error
}

// KeywordService lists and mutates tracked keywords.
type KeywordService struct {
	api      keywordAPI
	lists    *listview.Store
	metrics  *MetricsService
	validate *validator.Validate
	log      *zap.Logger
}

// NewKeywordService creates the keyword service.
func NewKeywordService(api keywordAPI, lists *listview.Store, metrics *MetricsService, validate *validator.Validate, log *zap.Logger) *KeywordService {
	return &KeywordService{api: api, lists: lists, metrics: metrics, validate: validate, log: log}
}

// List returns one cached page of keywords. Status and category filters ride
// in the query's filter map and are part of the cache key.
func (s *KeywordService) List(ctx context.Context, sess *models.Session, q models.ListQuery) ([]models.Keyword, *models.PageInfo, error) {
	keywords, err := fetchList(ctx, s.lists, s.metrics, resourceKeywords, q.Key(), func(ctx context.Context) ([]models.Keyword, error) {
		return s.api.ListKeywords(ctx, sess.Token, q)
	})
	if err != nil {
		return nil, nil, err
	}
	return keywords, models.NewPageInfo(q, len(keywords)), nil
}

// CreateKeywordRequest tracks a new keyword for a site.
type CreateKeywordRequest struct {
	SiteID   int    `json:"site_id" validate:"required,gt=0"`
	Keyword  string `json:"keyword" validate:"required"`
	Language string `json:"language"`
}

// Create validates and relays a keyword registration, then invalidates the
// list. The language defaults to "vi" like the platform backend.
func (s *KeywordService) Create(ctx context.Context, sess *models.Session, req CreateKeywordRequest) (*models.Keyword, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "site_id and keyword are required")
	}
	if req.Language == "" {
		req.Language = "vi"
	}

	keyword, err := s.api.CreateKeyword(ctx, sess.Token, upstream.KeywordCreate{
		SiteID:   req.SiteID,
		Keyword:  req.Keyword,
		Language: req.Language,
	})
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceKeywords)
	s.log.Info("keyword_created", zap.Int("site_id", req.SiteID), zap.String("keyword", req.Keyword))
	return keyword, nil
}

// UpdateKeywordRequest mutates keyword fields; nil fields stay untouched.
type UpdateKeywordRequest struct {
	Keyword  *string `json:"keyword"`
	Language *string `json:"language"`
	Status   *string `json:"status"`
	Category *string `json:"category"`
}

// Update relays a partial keyword update, then invalidates the list.
func (s *KeywordService) Update(ctx context.Context, sess *models.Session, id int, req UpdateKeywordRequest) (*models.Keyword, error) {
	keyword, err := s.api.UpdateKeyword(ctx, sess.Token, id, upstream.KeywordUpdate{
		Keyword:  req.Keyword,
		Language: req.Language,
		Status:   req.Status,
		Category: req.Category,
	})
	if err != nil {
		return nil, err
	}

	s.lists.Invalidate(resourceKeywords)
	s.log.Info("keyword_updated", zap.Int("keyword_id", id))
	return keyword, nil
}

// Delete removes a tracked keyword, then invalidates the list.
func (s *KeywordService) Delete(ctx context.Context, sess *models.Session, id int) error {
	if err := s.api.DeleteKeyword(ctx, sess.Token, id); err != nil {
		return err
	}

	s.lists.Invalidate(resourceKeywords)
	s.log.Info("keyword_deleted", zap.Int("keyword_id", id))
	return nil
}
