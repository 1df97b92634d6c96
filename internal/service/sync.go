package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tour_sync/internal/config"
	"tour_sync/internal/domain"
	"tour_sync/internal/metrics"
)

// stampTimeout bounds the sync stamp write, which runs detached from the
// batch deadline.
const stampTimeout = 10 * time.Second

type SyncService struct {
	sites     SiteStore
	offers    OfferStore
	source    TourSource
	regions   RegionResolver
	txManager TransactionManager
	publisher Publisher
	cache     TourCache
	metrics   *metrics.Metrics
	logger    *slog.Logger
	config    config.SyncConfig
	now       func() time.Time
}

// NewSyncService wires the orchestrator. publisher and cache may be nil.
func NewSyncService(
	sites SiteStore,
	offers OfferStore,
	source TourSource,
	regions RegionResolver,
	txManager TransactionManager,
	publisher Publisher,
	cache TourCache,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &SyncService{
		sites:     sites,
		offers:    offers,
		source:    source,
		regions:   regions,
		txManager: txManager,
		publisher: publisher,
		cache:     cache,
		metrics:   m,
		logger:    logger.With("component", "sync"),
		config:    cfg,
		now:       time.Now,
	}
}

// batchItem is one selected entry. site is nil for an explicit id that does
// not exist.
type batchItem struct {
	id   string
	site *domain.Site
}

// RunBatch selects sites and syncs each one. Per-site failures become
// outcomes; only selection and catalog failures are returned as errors.
func (s *SyncService) RunBatch(ctx context.Context, req domain.BatchRequest) (*domain.BatchReport, error) {
	startTime := time.Now()
	runID := uuid.New()
	logger := s.logger.With("run_id", runID)

	items, mode, err := s.selectSites(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("select sites: %w", err)
	}

	logger.Info("starting batch", "mode", mode, "sites", len(items))

	report := &domain.BatchReport{
		RunID:    runID,
		Outcomes: make([]domain.SyncOutcome, len(items)),
	}

	if len(items) > 0 {
		if err := s.regions.EnsureLoaded(ctx); err != nil {
			return nil, fmt.Errorf("load region catalog: %w", err)
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(s.config.Concurrency)
	for i, item := range items {
		g.Go(func() error {
			report.Outcomes[i] = s.syncItem(ctx, runID, item)
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(startTime)
	s.metrics.ObserveBatch(report.Duration)

	counts := report.Counts()
	logger.Info("batch completed",
		"sites", len(report.Outcomes),
		"updated", counts[domain.OutcomeUpdated],
		"no_tours_found", counts[domain.OutcomeNoToursFound],
		"no_nearby_region", counts[domain.OutcomeNoNearbyRegion],
		"skipped_no_coords", counts[domain.OutcomeSkippedNoCoords],
		"errors", counts[domain.OutcomeError],
		"duration", report.Duration,
	)

	return report, nil
}

func (s *SyncService) selectSites(ctx context.Context, req domain.BatchRequest) ([]batchItem, string, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.config.BatchLimit
	}

	if len(req.SiteIDs) > 0 {
		items, err := s.explicitSites(ctx, req.SiteIDs)
		return items, "explicit", err
	}

	if query := strings.TrimSpace(req.SearchQuery); query != "" {
		sites, err := s.sites.SearchByName(ctx, query, limit)
		return toItems(sites), "query", err
	}

	sites, err := s.sites.ListStalest(ctx, limit)
	return toItems(sites), "stalest", err
}

// explicitSites keeps the caller's order and drops repeated ids.
func (s *SyncService) explicitSites(ctx context.Context, ids []string) ([]batchItem, error) {
	sites, err := s.sites.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Site, len(sites))
	for _, site := range sites {
		byID[site.ID] = site
	}

	items := make([]batchItem, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item := batchItem{id: id}
		if site, ok := byID[id]; ok {
			item.site = &site
		}
		items = append(items, item)
	}
	return items, nil
}

func toItems(sites []domain.Site) []batchItem {
	items := make([]batchItem, len(sites))
	for i := range sites {
		items[i] = batchItem{id: sites[i].ID, site: &sites[i]}
	}
	return items
}

func (s *SyncService) syncItem(ctx context.Context, runID uuid.UUID, item batchItem) domain.SyncOutcome {
	var outcome domain.SyncOutcome
	if item.site == nil {
		// nothing to stamp
		s.logger.Warn("site not found", "site_id", item.id)
		outcome = domain.SyncOutcome{
			SiteID: item.id,
			Status: domain.OutcomeError,
			Error:  domain.ErrSiteNotFound.Error(),
		}
	} else {
		outcome = s.processSite(ctx, *item.site)
	}

	s.metrics.IncSiteOutcome(string(outcome.Status))

	if outcome.Status == domain.OutcomeUpdated {
		s.afterUpdate(ctx, runID, outcome)
	}
	return outcome
}

// processSite resolves, fetches and stores one site, then writes its sync
// stamp exactly once. It never returns an error.
func (s *SyncService) processSite(ctx context.Context, site domain.Site) domain.SyncOutcome {
	logger := s.logger.With("site_id", site.ID)

	outcome := s.refreshSite(ctx, logger, site)

	// a batch deadline must not cost the site its stamp
	stampCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stampTimeout)
	defer cancel()

	if err := s.sites.MarkSynced(stampCtx, site.ID, s.now().UTC(), outcome.Status.SiteStatus()); err != nil {
		logger.Error("failed to write sync stamp", "status", outcome.Status, "error", err)
		return errorOutcome(site, fmt.Errorf("mark synced: %w", err))
	}

	logger.Debug("site synced", "status", outcome.Status, "tours", outcome.ToursFound)
	return outcome
}

func (s *SyncService) refreshSite(ctx context.Context, logger *slog.Logger, site domain.Site) domain.SyncOutcome {
	outcome := domain.SyncOutcome{SiteID: site.ID, SiteName: site.Name}

	if !site.HasValidLocation() {
		outcome.Status = domain.OutcomeSkippedNoCoords
		return outcome
	}

	region, ok := s.regions.NearestRegion(*site.Location, s.config.MaxRegionDistanceKm)
	if !ok {
		outcome.Status = domain.OutcomeNoNearbyRegion
		return outcome
	}

	offers, err := s.source.SearchTours(ctx, region.ID, site.Name)
	if err != nil {
		logger.Error("failed to search tours", "region_id", region.ID, "error", err)
		return errorOutcome(site, err)
	}

	offers = uniqueOffers(site.ID, offers)
	if len(offers) == 0 {
		outcome.Status = domain.OutcomeNoToursFound
		return outcome
	}

	if err := s.storeOffers(ctx, site.ID, offers); err != nil {
		logger.Error("failed to store offers", "count", len(offers), "error", err)
		return errorOutcome(site, err)
	}
	s.metrics.AddToursStored(len(offers))

	outcome.Status = domain.OutcomeUpdated
	outcome.ToursFound = len(offers)
	return outcome
}

// storeOffers replaces the site's inventory with offers in one transaction.
func (s *SyncService) storeOffers(ctx context.Context, siteID string, offers []domain.TourOffer) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.offers.UpsertBatch(txCtx, siteID, offers); err != nil {
			return fmt.Errorf("upsert offers: %w", err)
		}

		keep := make([]string, len(offers))
		for i, o := range offers {
			keep[i] = o.ProviderTourID
		}

		removed, err := s.offers.DeleteExcept(txCtx, siteID, keep)
		if err != nil {
			return fmt.Errorf("delete stale offers: %w", err)
		}
		if removed > 0 {
			s.logger.Debug("removed stale offers", "site_id", siteID, "count", removed)
		}
		return nil
	})
}

func (s *SyncService) afterUpdate(ctx context.Context, runID uuid.UUID, outcome domain.SyncOutcome) {
	if s.cache != nil {
		s.cache.Invalidate(outcome.SiteID)
	}

	if s.publisher == nil {
		return
	}
	event := domain.SiteToursEvent{
		SiteID:     outcome.SiteID,
		ToursFound: outcome.ToursFound,
		RunID:      runID,
	}
	if err := s.publisher.PublishSiteTours(ctx, event); err != nil {
		s.logger.Warn("failed to publish site tours event", "site_id", outcome.SiteID, "error", err)
	}
}

// uniqueOffers stamps the site id and keeps the first offer per provider id.
func uniqueOffers(siteID string, offers []domain.TourOffer) []domain.TourOffer {
	seen := make(map[string]struct{}, len(offers))
	out := make([]domain.TourOffer, 0, len(offers))
	for _, o := range offers {
		if _, dup := seen[o.ProviderTourID]; dup {
			continue
		}
		seen[o.ProviderTourID] = struct{}{}
		o.SiteID = siteID
		out = append(out, o)
	}
	return out
}

func errorOutcome(site domain.Site, err error) domain.SyncOutcome {
	return domain.SyncOutcome{
		SiteID:   site.ID,
		SiteName: site.Name,
		Status:   domain.OutcomeError,
		Error:    err.Error(),
	}
}
