package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"tour_sync/internal/config"
	"tour_sync/internal/domain"
	"tour_sync/internal/metrics"
	"tour_sync/internal/ranking"
)

// TourService serves ranked offers for a site. The full ranked pool is
// cached per site and sliced per request.
type TourService struct {
	sites    SiteStore
	offers   OfferStore
	engine   *ranking.Engine
	cache    *cache.Cache
	poolSize int
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewTourService(
	sites SiteStore,
	offers OfferStore,
	engine *ranking.Engine,
	cfg config.RankingConfig,
	m *metrics.Metrics,
	logger *slog.Logger,
) *TourService {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = ranking.DefaultPoolSize
	}
	return &TourService{
		sites:    sites,
		offers:   offers,
		engine:   engine,
		cache:    cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		poolSize: poolSize,
		metrics:  m,
		logger:   logger.With("component", "tours"),
	}
}

// RankedTours returns up to topN offers for the site, best first.
func (s *TourService) RankedTours(ctx context.Context, siteID string, topN int) ([]domain.TourOffer, error) {
	if topN <= 0 {
		return []domain.TourOffer{}, nil
	}

	ranked, err := s.rankedPool(ctx, siteID)
	if err != nil {
		return nil, err
	}

	return slices.Clone(ranked[:min(topN, len(ranked))]), nil
}

func (s *TourService) rankedPool(ctx context.Context, siteID string) ([]domain.TourOffer, error) {
	if cached, ok := s.cache.Get(siteID); ok {
		s.metrics.IncRankCache("hit")
		return cached.([]domain.TourOffer), nil
	}
	s.metrics.IncRankCache("miss")

	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("get site: %w", err)
	}

	pool, err := s.offers.TopByReviews(ctx, siteID, s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("load offer pool: %w", err)
	}

	start := time.Now()
	ranked := s.engine.Rank(ranking.Site{ID: site.ID, Name: site.Name}, pool, len(pool))
	s.logger.Debug("ranked offers",
		"site_id", siteID,
		"pool", len(pool),
		"kept", len(ranked),
		"duration", time.Since(start),
	)

	s.cache.Set(siteID, ranked, cache.DefaultExpiration)
	return ranked, nil
}

// Invalidate drops the cached ranking for a site.
func (s *TourService) Invalidate(siteID string) {
	s.cache.Delete(siteID)
}
