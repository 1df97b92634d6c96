package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles Prometheus collectors for the sync engine.
// All methods are safe on a nil receiver.
type Metrics struct {
	Registry         *prometheus.Registry
	ProviderRequests *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec
	ProviderRetries  prometheus.Counter
	SiteOutcomes     *prometheus.CounterVec
	BatchDuration    prometheus.Histogram
	ToursStored      prometheus.Counter
	CatalogRefreshes *prometheus.CounterVec
	RankCacheLookups *prometheus.CounterVec
}

// New constructs and registers all metrics on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	providerRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_provider_requests_total",
			Help: "Requests sent to the tour provider by operation and result.",
		},
		[]string{"operation", "result"},
	)
	providerDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tour_provider_request_duration_seconds",
			Help:    "Tour provider request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	providerRetries := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tour_provider_retries_total",
			Help: "Retries scheduled against the tour provider.",
		},
	)
	siteOutcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_sync_site_outcomes_total",
			Help: "Per-site sync outcomes by status.",
		},
		[]string{"status"},
	)
	batchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tour_sync_batch_duration_seconds",
			Help:    "Duration of sync batches.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
	toursStored := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tour_sync_offers_stored_total",
			Help: "Tour offers written to the store.",
		},
	)
	catalogRefreshes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_region_catalog_loads_total",
			Help: "Region catalog loads by origin (store, provider) and result.",
		},
		[]string{"origin", "result"},
	)
	rankCache := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tour_rank_cache_lookups_total",
			Help: "Ranked tours cache lookups by result.",
		},
		[]string{"result"},
	)

	registry.MustRegister(
		providerRequests, providerDuration, providerRetries,
		siteOutcomes, batchDuration, toursStored,
		catalogRefreshes, rankCache,
	)

	return &Metrics{
		Registry:         registry,
		ProviderRequests: providerRequests,
		ProviderDuration: providerDuration,
		ProviderRetries:  providerRetries,
		SiteOutcomes:     siteOutcomes,
		BatchDuration:    batchDuration,
		ToursStored:      toursStored,
		CatalogRefreshes: catalogRefreshes,
		RankCacheLookups: rankCache,
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveProviderRequest(operation, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequests.WithLabelValues(operation, result).Inc()
	m.ProviderDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) IncProviderRetries() {
	if m == nil {
		return
	}
	m.ProviderRetries.Inc()
}

func (m *Metrics) IncSiteOutcome(status string) {
	if m == nil {
		return
	}
	m.SiteOutcomes.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveBatch(d time.Duration) {
	if m == nil {
		return
	}
	m.BatchDuration.Observe(d.Seconds())
}

func (m *Metrics) AddToursStored(n int) {
	if m == nil {
		return
	}
	m.ToursStored.Add(float64(n))
}

func (m *Metrics) IncCatalogLoad(origin, result string) {
	if m == nil {
		return
	}
	m.CatalogRefreshes.WithLabelValues(origin, result).Inc()
}

func (m *Metrics) IncRankCache(result string) {
	if m == nil {
		return
	}
	m.RankCacheLookups.WithLabelValues(result).Inc()
}
