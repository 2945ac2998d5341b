package dataset

import (
	"context"
	"sync"

	"github.com/farxc/contract_consumption/internal/logger"
)

// Cache memoizes the snapshot of a Source: the source is read at most
// once until Invalidate is called, after which the next Get reloads
// synchronously.
type Cache struct {
	mu     sync.Mutex
	source Source
	snap   *Snapshot
	logger *logger.Logger
}

func NewCache(source Source, appLogger *logger.Logger) *Cache {
	return &Cache{source: source, logger: appLogger}
}

// Get returns the memoized snapshot, loading it on first use.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	const component = "DatasetCache"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil {
		return c.snap, nil
	}

	c.logger.Info(component, "Loading datasets from source")
	snap, err := c.source.Load(ctx)
	if err != nil {
		c.logger.Error(component, "Dataset load failed: error=%v", err)
		return nil, err
	}

	c.logger.Info(component, "Datasets loaded: payments=%d commitments=%d", snap.Payments.Nrow(), snap.Commitments.Nrow())
	c.snap = snap
	return c.snap, nil
}

// Invalidate discards the memoized snapshot. The next Get reloads.
func (c *Cache) Invalidate() {
	const component = "DatasetCache"

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap = nil
	c.logger.Info(component, "Snapshot invalidated, next read will reload")
}
