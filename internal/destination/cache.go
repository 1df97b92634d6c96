// Package destination maps site coordinates onto the provider's region
// taxonomy.
//
// The catalog is a slow-changing reference dataset. It is read from the local
// store on first use and, when the store is empty, fetched wholesale from the
// provider and persisted with a full replace. Loading happens at most once per
// Cache; concurrent callers share a single in-flight load.
package destination

//go:generate mockgen -source=cache.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"tour_sync/internal/domain"
	"tour_sync/internal/geo"
	"tour_sync/internal/metrics"
)

// ErrEmptyCatalog is returned when the provider reports no regions at all.
var ErrEmptyCatalog = errors.New("provider returned an empty region catalog")

// RegionStore persists the catalog locally.
type RegionStore interface {
	LoadRegions(ctx context.Context) ([]domain.Region, error)
	ReplaceRegions(ctx context.Context, regions []domain.Region) error
}

// RegionLister fetches the full catalog from the provider.
type RegionLister interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
}

const defaultLoadTimeout = 2 * time.Minute

// Config controls catalog staleness. A zero TTL never expires the catalog.
// LoadTimeout bounds a shared load; zero means two minutes.
type Config struct {
	TTL         time.Duration
	LoadTimeout time.Duration
}

type Cache struct {
	store   RegionStore
	lister  RegionLister
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	regions []domain.Region
	loaded  bool
}

func New(store RegionStore, lister RegionLister, cfg Config, m *metrics.Metrics, logger *slog.Logger) *Cache {
	return &Cache{
		store:   store,
		lister:  lister,
		cfg:     cfg,
		metrics: m,
		logger:  logger.With("component", "destination_cache"),
		now:     time.Now,
	}
}

// EnsureLoaded populates the catalog once. Errors are fatal for the caller:
// without a catalog no site can be resolved.
//
// The shared load runs detached from any single caller, so one caller giving
// up does not fail the others. Each caller still returns on its own ctx.
func (c *Cache) EnsureLoaded(ctx context.Context) error {
	if c.isLoaded() {
		return nil
	}

	ch := c.group.DoChan("load", func() (any, error) {
		if c.isLoaded() {
			return nil, nil
		}
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout())
		defer cancel()
		return nil, c.load(loadCtx)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

// Refresh replaces the catalog with a fresh provider fetch.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do("refresh", func() (any, error) {
		regions, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.install(regions)
		return nil, nil
	})
	return err
}

// Seed installs a catalog directly, bypassing store and provider.
func (c *Cache) Seed(regions []domain.Region) {
	c.install(regions)
}

// Len returns the number of cached regions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.regions)
}

// NearestRegion returns the region whose center is closest to point, or
// false when none lies within maxDistanceKm. Regions without a center are
// ignored; on equal distance the earlier catalog entry wins.
func (c *Cache) NearestRegion(point domain.Coordinate, maxDistanceKm float64) (domain.Region, bool) {
	if !point.Valid() {
		return domain.Region{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	bestIdx := -1
	bestDist := math.Inf(1)
	for i := range c.regions {
		center := c.regions[i].Center
		if center == nil || !center.Valid() {
			continue
		}
		if d := geo.DistanceKm(point, *center); d < bestDist {
			bestIdx, bestDist = i, d
		}
	}

	if bestIdx < 0 || bestDist > maxDistanceKm {
		return domain.Region{}, false
	}
	return c.regions[bestIdx], true
}

func (c *Cache) load(ctx context.Context) error {
	cached, err := c.store.LoadRegions(ctx)
	if err != nil {
		c.metrics.IncCatalogLoad("store", "error")
		return fmt.Errorf("load cached regions: %w", err)
	}

	if len(cached) == 0 {
		c.logger.Info("region cache empty, fetching catalog from provider")
		regions, err := c.fetch(ctx)
		if err != nil {
			return err
		}
		c.install(regions)
		return nil
	}

	c.metrics.IncCatalogLoad("store", "ok")

	if c.expired(cached) {
		c.logger.Info("region cache stale, refreshing", "regions", len(cached), "ttl", c.cfg.TTL)
		regions, err := c.fetch(ctx)
		if err != nil {
			c.logger.Warn("region refresh failed, using stale catalog", "error", err)
			c.install(cached)
			return nil
		}
		c.install(regions)
		return nil
	}

	c.install(cached)
	c.logger.Debug("region catalog loaded from store", "regions", len(cached))
	return nil
}

func (c *Cache) fetch(ctx context.Context) ([]domain.Region, error) {
	regions, err := c.lister.ListRegions(ctx)
	if err != nil {
		c.metrics.IncCatalogLoad("provider", "error")
		return nil, fmt.Errorf("fetch region catalog: %w", err)
	}
	if len(regions) == 0 {
		c.metrics.IncCatalogLoad("provider", "empty")
		return nil, ErrEmptyCatalog
	}
	c.metrics.IncCatalogLoad("provider", "ok")

	if err := c.store.ReplaceRegions(ctx, regions); err != nil {
		c.logger.Warn("failed to persist region catalog", "regions", len(regions), "error", err)
	} else {
		c.logger.Info("region catalog persisted", "regions", len(regions))
	}

	return regions, nil
}

func (c *Cache) expired(regions []domain.Region) bool {
	if c.cfg.TTL <= 0 {
		return false
	}
	oldest := regions[0].FetchedAt
	for _, r := range regions[1:] {
		if r.FetchedAt.Before(oldest) {
			oldest = r.FetchedAt
		}
	}
	return c.now().Sub(oldest) > c.cfg.TTL
}

func (c *Cache) loadTimeout() time.Duration {
	if c.cfg.LoadTimeout > 0 {
		return c.cfg.LoadTimeout
	}
	return defaultLoadTimeout
}

func (c *Cache) install(regions []domain.Region) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.regions = regions
	c.loaded = true
}

func (c *Cache) isLoaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
