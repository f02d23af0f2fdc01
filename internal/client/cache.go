package client

import (
	"context"
	"strconv"
	"sync"

	"github.com/kakeibo-app/backend/internal/models"
	"golang.org/x/sync/singleflight"
)

// Source loads the complete record list.
type Source interface {
	List(ctx context.Context) ([]models.Record, error)
}

// Cache holds the record list until it is invalidated.
//
// Every invalidation bumps the version. The list is loaded again when the
// cached list belongs to an older version. Concurrent loads for the same
// version share one request.
type Cache struct {
	source Source
	group  singleflight.Group

	mu      sync.Mutex
	version uint64
	loaded  uint64
	valid   bool
	records []models.Record
}

// NewCache returns an empty cache for the source.
func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Invalidate marks the cached list as outdated.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.version++
}

// Version returns the current version.
func (c *Cache) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.version
}

// Records returns the record list, loading it from the source if the cache is stale.
// The returned slice is a copy.
func (c *Cache) Records(ctx context.Context) ([]models.Record, error) {
	c.mu.Lock()
	if c.valid && c.loaded == c.version {
		records := clone(c.records)
		c.mu.Unlock()
		return records, nil
	}
	version := c.version
	c.mu.Unlock()

	// The load is shared, so it must not end when the caller that
	// started it gives up
	load := context.WithoutCancel(ctx)

	ch := c.group.DoChan(strconv.FormatUint(version, 10), func() (any, error) {
		records, err := c.source.List(load)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		// Keep the list only if nothing changed while loading
		if c.version == version {
			c.records = records
			c.loaded = version
			c.valid = true
		}

		return records, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return nil, result.Err
		}
		return clone(result.Val.([]models.Record)), nil
	}
}

func clone(records []models.Record) []models.Record {
	result := make([]models.Record, len(records))
	copy(result, records)
	return result
}
