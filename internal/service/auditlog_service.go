package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
	"github.com/contentpilot/console-api/pkg/export"
)

const resourceAuditLogs = "audit-logs"

// auditCSVHeaders is the fixed export column order.
var auditCSVHeaders = []string{"id", "actor_user_id", "action", "target_type", "target_id", "note", "created_at"}

var auditTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

type auditLogAPI interface {
	ListAuditLogs(ctx context.Context, token string, q models.ListQuery) ([]models.AuditLog, error)
}

// AuditLogQuery is the filter set for the audit trail.
type AuditLogQuery struct {
	Action string
	Start  string
	End    string
	Limit  int
}

// AuditLogService lists and exports the platform audit trail.
type AuditLogService struct {
	api     auditLogAPI
	lists   *listview.Store
	metrics *MetricsService
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	maxRows int
	log     *zap.Logger
}

// NewAuditLogService creates the audit-log service.
func NewAuditLogService(api auditLogAPI, lists *listview.Store, metrics *MetricsService, maxRows int, log *zap.Logger) *AuditLogService {
	return &AuditLogService{
		api:     api,
		lists:   lists,
		metrics: metrics,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		maxRows: maxRows,
		log:     log,
	}
}

// List returns audit entries matching the filter. Datetime filters are
// validated locally so a typo costs no upstream round trip.
func (s *AuditLogService) List(ctx context.Context, sess *models.Session, q AuditLogQuery) ([]models.AuditLog, error) {
	listQuery, err := s.buildQuery(q)
	if err != nil {
		return nil, err
	}

	return fetchList(ctx, s.lists, s.metrics, resourceAuditLogs, listQuery.Key(), func(ctx context.Context) ([]models.AuditLog, error) {
		return s.api.ListAuditLogs(ctx, sess.Token, *listQuery)
	})
}

// Export renders the same filter set as CSV or PDF bytes. Returns the body,
// its content type and a suggested filename.
func (s *AuditLogService) Export(ctx context.Context, sess *models.Session, q AuditLogQuery, format string) ([]byte, string, string, error) {
	q.Limit = s.maxRows
	logs, err := s.List(ctx, sess, q)
	if err != nil {
		return nil, "", "", err
	}

	dataset := export.Dataset{Headers: auditCSVHeaders, Rows: make([][]string, 0, len(logs))}
	for _, entry := range logs {
		createdAt := ""
		if entry.CreatedAt != nil {
			createdAt = entry.CreatedAt.Format(time.RFC3339)
		}
		dataset.Rows = append(dataset.Rows, []string{
			strconv.Itoa(entry.ID),
			strconv.Itoa(entry.ActorUserID),
			entry.Action,
			entry.TargetType,
			strconv.Itoa(entry.TargetID),
			entry.Note,
			createdAt,
		})
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	switch format {
	case "csv", "":
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv export")
		}
		return body, "text/csv; charset=utf-8", fmt.Sprintf("audit-logs-%s.csv", stamp), nil
	case "pdf":
		body, err := s.pdf.Render(dataset, "Audit Logs")
		if err != nil {
			return nil, "", "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf export")
		}
		return body, "application/pdf", fmt.Sprintf("audit-logs-%s.pdf", stamp), nil
	default:
		return nil, "", "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func (s *AuditLogService) buildQuery(q AuditLogQuery) (*models.ListQuery, error) {
	filters := map[string]string{}
	if q.Action != "" {
		filters["action"] = q.Action
	}
	for name, raw := range map[string]string{"start": q.Start, "end": q.End} {
		if raw == "" {
			continue
		}
		if !validAuditTime(raw) {
			return nil, appErrors.New(appErrors.ErrValidation.Code, http.StatusUnprocessableEntity,
				fmt.Sprintf("invalid %s datetime, expected ISO format like 2025-10-16T00:00:00", name))
		}
		filters[name] = raw
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > s.maxRows {
		limit = s.maxRows
	}

	listQuery := models.ListQuery{Page: 1, Limit: limit, Filters: filters}
	return &listQuery, nil
}

func validAuditTime(raw string) bool {
	for _, layout := range auditTimeLayouts {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}
	return false
}
