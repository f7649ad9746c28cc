package listview

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesByKey(t *testing.T) {
	store := NewStore(time.Minute)
	calls := 0
	loader := func(ctx context.Context) (interface{}, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	ctx := context.Background()

	value, hit, err := store.Fetch(ctx, "sites", "page=1&limit=10", loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, calls)

	value, hit, err = store.Fetch(ctx, "sites", "page=1&limit=10", loader)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.Equal(t, 1, calls)
}

func TestFetchDistinctKeysDoNotCollide(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	_, _, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "page-one", nil
	})
	require.NoError(t, err)

	value, hit, err := store.Fetch(ctx, "sites", "page=2&limit=10", func(ctx context.Context) (interface{}, error) {
		return "page-two", nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "page-two", value)
}

func TestFetchResourcesAreIsolated(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	_, _, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "sites", nil
	})
	require.NoError(t, err)

	value, hit, err := store.Fetch(ctx, "keywords", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "keywords", nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "keywords", value)
}

func TestFetchErrorIsNotCached(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	calls := 0

	_, _, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		calls++
		return nil, assert.AnError
	})
	require.Error(t, err)

	value, hit, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, 2, calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	calls := 0
	loader := func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	}

	_, _, err := store.Fetch(ctx, "sites", "page=1&limit=10", loader)
	require.NoError(t, err)

	store.Invalidate("sites")

	value, hit, err := store.Fetch(ctx, "sites", "page=1&limit=10", loader)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, value)
}

func TestInvalidateLeavesOtherResourcesCached(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	_, _, err := store.Fetch(ctx, "keywords", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "cached", nil
	})
	require.NoError(t, err)

	store.Invalidate("sites")

	_, hit, err := store.Fetch(ctx, "keywords", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "reloaded", nil
	})
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestInvalidateDuringFlightPreventsStaleCache(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		value, _, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
			close(started)
			<-release
			return "stale", nil
		})
		// The in-flight caller still receives its own result.
		assert.NoError(t, err)
		assert.Equal(t, "stale", value)
	}()

	<-started
	store.Invalidate("sites")
	close(release)
	wg.Wait()

	value, hit, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.False(t, hit, "result loaded before the invalidation must not be served")
	assert.Equal(t, "fresh", value)
}

func TestInvalidateBetweenLoadAndWritePreventsStaleCache(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	// Invalidation lands in the window between the loader returning its page
	// and the store deciding whether to cache it.
	store.afterLoad = func() {
		store.Invalidate("sites")
	}

	value, hit, err := store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "stale", nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "stale", value)

	store.afterLoad = nil

	value, hit, err = store.Fetch(ctx, "sites", "page=1&limit=10", func(ctx context.Context) (interface{}, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.False(t, hit, "a page loaded before the invalidation must not be served")
	assert.Equal(t, "fresh", value)
}

func TestFetchCollapsesConcurrentLoads(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	var mu sync.Mutex
	calls := 0
	gate := make(chan struct{})

	loader := func(ctx context.Context) (interface{}, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-gate
		return "shared", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]interface{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, _, err := store.Fetch(ctx, "sites", "page=1&limit=10", loader)
			assert.NoError(t, err)
			results[i] = value
		}(i)
	}

	// Give the goroutines time to pile onto the same key before releasing.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
	for _, value := range results {
		assert.Equal(t, "shared", value)
	}
}
