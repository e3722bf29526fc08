package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/metrics"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type DeskRepository interface {
	GetActive(ctx context.Context) ([]*repository.Desk, error)
}

// DeskCache keeps the active desk catalog in memory. Desk lifecycle is
// managed outside this service, so the catalog only changes on Refresh;
// availability reads hit this cache instead of the store.
type DeskCache struct {
	mu     sync.RWMutex
	desks  map[int64]*repository.Desk
	repo   DeskRepository
	logger *zap.Logger
}

func NewDeskCache(repo DeskRepository, logger *zap.Logger) *DeskCache {
	return &DeskCache{
		desks:  make(map[int64]*repository.Desk),
		repo:   repo,
		logger: logger,
	}
}

func (c *DeskCache) LoadInitialData(ctx context.Context) error {
	return c.Refresh(ctx)
}

func (c *DeskCache) Refresh(ctx context.Context) error {
	desks, err := c.repo.GetActive(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.desks = make(map[int64]*repository.Desk, len(desks))
	for _, desk := range desks {
		deskCopy := *desk
		c.desks[desk.ID] = &deskCopy
	}
	size := len(c.desks)
	c.mu.Unlock()

	metrics.DeskCacheItems.Set(float64(size))
	c.logger.Info("desk catalog cache refreshed", zap.Int("desks", size))
	return nil
}

// GetActive returns the cached active desks ordered by ascending id. Falls
// through to the store when the cache has never been loaded.
func (c *DeskCache) GetActive(ctx context.Context) ([]*repository.Desk, error) {
	c.mu.RLock()
	if len(c.desks) == 0 {
		c.mu.RUnlock()
		return c.repo.GetActive(ctx)
	}

	desks := make([]*repository.Desk, 0, len(c.desks))
	for _, desk := range c.desks {
		deskCopy := *desk
		desks = append(desks, &deskCopy)
	}
	c.mu.RUnlock()

	sort.Slice(desks, func(i, j int) bool { return desks[i].ID < desks[j].ID })
	return desks, nil
}

func (c *DeskCache) Get(id int64) (*repository.Desk, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	desk, found := c.desks[id]
	if !found {
		return nil, false
	}
	deskCopy := *desk
	return &deskCopy, true
}
