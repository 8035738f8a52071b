package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/griffix/backend/internal/domain/catalog"
)

// RowSource fetches the raw rows of one sheet tab.
type RowSource interface {
	Rows(ctx context.Context, tab string) ([]catalog.Row, error)
}

// snapshot is one cached dataset with its fetch time.
type snapshot struct {
	rows      []catalog.Row
	fetchedAt time.Time
}

// CatalogCache serves catalog datasets from memory and refreshes them
// from the source once the TTL lapses. Concurrent refreshes of the
// same tab collapse into a single upstream fetch; a failed refresh is
// returned to every waiter rather than falling back to stale data.
type CatalogCache struct {
	source RowSource
	ttl    time.Duration
	logger *zap.Logger

	mu        sync.RWMutex
	snapshots map[string]snapshot
	group     singleflight.Group

	now func() time.Time
}

// CatalogCacheOption is a functional option for configuring the cache
type CatalogCacheOption func(*CatalogCache)

// WithClock overrides the cache's time source, used in tests.
func WithClock(now func() time.Time) CatalogCacheOption {
	return func(c *CatalogCache) {
		c.now = now
	}
}

// NewCatalogCache creates a cache over the given row source.
func NewCatalogCache(source RowSource, ttl time.Duration, logger *zap.Logger, opts ...CatalogCacheOption) *CatalogCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	c := &CatalogCache{
		source:    source,
		ttl:       ttl,
		logger:    logger,
		snapshots: make(map[string]snapshot),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rows returns the cached rows for a tab, refreshing from the source
// when the snapshot is missing or older than the TTL.
func (c *CatalogCache) Rows(ctx context.Context, tab string) ([]catalog.Row, error) {
	c.mu.RLock()
	snap, ok := c.snapshots[tab]
	c.mu.RUnlock()
	if ok && c.now().Sub(snap.fetchedAt) < c.ttl {
		return snap.rows, nil
	}

	rows, err, _ := c.group.Do(tab, func() (any, error) {
		// A refresh that finished while we queued is fresh enough.
		c.mu.RLock()
		snap, ok := c.snapshots[tab]
		c.mu.RUnlock()
		if ok && c.now().Sub(snap.fetchedAt) < c.ttl {
			return snap.rows, nil
		}

		fetched, err := c.source.Rows(ctx, tab)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshots[tab] = snapshot{rows: fetched, fetchedAt: c.now()}
		c.mu.Unlock()

		c.logger.Debug("catalog snapshot refreshed",
			zap.String("tab", tab),
			zap.Int("rows", len(fetched)))
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return rows.([]catalog.Row), nil
}

// Clear drops every snapshot so the next read hits the source.
func (c *CatalogCache) Clear() {
	c.mu.Lock()
	c.snapshots = make(map[string]snapshot)
	c.mu.Unlock()
}
