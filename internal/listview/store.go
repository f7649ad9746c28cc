// Package listview caches list pages keyed by their full parameter set. It is
// the server-side twin of a data-fetching hook: same-key reads share one
// fetch, mutations invalidate, and a fetch that was in flight across an
// invalidation can never overwrite fresher state.
package listview

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Loader produces one page from the upstream API.
type Loader func(ctx context.Context) (interface{}, error)

// Store is a TTL'd page cache with per-resource generations.
type Store struct {
	cache *gocache.Cache
	group singleflight.Group

	// mu guards gens and every guarded cache write: the generation re-check
	// and the write it protects must be atomic with Invalidate's bump.
	mu   sync.Mutex
	gens map[string]uint64

	// afterLoad, when set, runs after the loader returns and before the
	// guarded cache write.
	afterLoad func()
}

// NewStore builds a store whose entries live for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, 2*ttl),
		gens:  make(map[string]uint64),
	}
}

// Fetch returns the cached page for (resource, key) or runs loader exactly
// once for all concurrent callers of the same key. The resource generation is
// read at dispatch time: if Invalidate runs while the loader is in flight,
// the loader's result is still handed to its callers but never cached, so
// the next read observes post-mutation state. The boolean reports a cache
// hit.
func (s *Store) Fetch(ctx context.Context, resource, key string, loader Loader) (interface{}, bool, error) {
	cacheKey := resource + "?" + key

	if value, ok := s.cache.Get(cacheKey); ok {
		return value, true, nil
	}

	dispatched := s.generation(resource)

	value, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		page, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if s.afterLoad != nil {
			s.afterLoad()
		}
		s.mu.Lock()
		if s.gens[resource] == dispatched {
			s.cache.SetDefault(cacheKey, page)
		}
		s.mu.Unlock()
		return page, nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, false, nil
}

// Invalidate drops every cached page of a resource and bumps its generation.
// Called after any successful mutation so the visible list resyncs with
// server-confirmed state on the next fetch.
func (s *Store) Invalidate(resource string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[resource]++

	prefix := resource + "?"
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.cache.Delete(key)
		}
	}
}

func (s *Store) generation(resource string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[resource]
}
