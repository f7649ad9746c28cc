package service

import (
	"context"

	"github.com/contentpilot/console-api/internal/listview"
)

// fetchList runs a typed list load through the shared page cache and records
// the hit/miss outcome.
func fetchList[T any](ctx context.Context, lists *listview.Store, metrics *MetricsService, resource, key string, loader func(context.Context) ([]T, error)) ([]T, error) {
	value, hit, err := lists.Fetch(ctx, resource, key, func(ctx context.Context) (interface{}, error) {
		return loader(ctx)
	})
	if err != nil {
		return nil, err
	}
	if metrics != nil {
		metrics.ObserveListFetch(resource, hit)
	}
	items, _ := value.([]T)
	return items, nil
}
