package viator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tour_sync/internal/domain"
	"tour_sync/internal/metrics"
)

const (
	SourceID   = "viator"
	SourceName = "Viator Partner API"

	opListRegions = "list_regions"
	opSearchTours = "search_tours"
)

// Config holds provider client configuration.
type Config struct {
	BaseURL           string
	APIKey            string
	PageSize          int
	Currency          string
	ImageHeight       int
	Timeout           time.Duration
	RequestsPerSecond float64
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
}

// Source is the request/response boundary to the tour provider.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	pageSize       int
	currency       string
	imageHeight    int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	limiter        *rate.Limiter
	metrics        *metrics.Metrics
	logger         *slog.Logger
	now            func() time.Time
}

// New creates a provider client. m may be nil.
func New(cfg Config, m *metrics.Metrics, logger *slog.Logger) *Source {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		pageSize:       cfg.PageSize,
		currency:       cfg.Currency,
		imageHeight:    cfg.ImageHeight,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		limiter:        rate.NewLimiter(limit, 1),
		metrics:        m,
		logger:         logger.With("source", SourceID),
		now:            time.Now,
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// ListRegions fetches the complete destination taxonomy.
func (s *Source) ListRegions(ctx context.Context) ([]domain.Region, error) {
	var resp DestinationsResponse
	if err := s.call(ctx, opListRegions, http.MethodGet, "/destinations", nil, &resp); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	s.logger.Debug("fetched destinations",
		"count", len(resp.Destinations),
		"total", resp.TotalCount,
	)

	return s.transformDestinations(resp.Destinations), nil
}

// SearchTours fetches the first page of products for a region and text query.
// The provider orders by price descending; callers re-rank.
func (s *Source) SearchTours(ctx context.Context, regionID, query string) ([]domain.TourOffer, error) {
	body := SearchRequest{
		Filtering:  SearchFiltering{Text: query, Destination: regionID},
		Sorting:    SearchSorting{Sort: "PRICE", Order: "DESCENDING"},
		Pagination: SearchPagination{Start: 1, Count: s.pageSize},
		Currency:   s.currency,
	}

	var resp SearchResponse
	if err := s.call(ctx, opSearchTours, http.MethodPost, "/products/search", body, &resp); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	s.logger.Debug("fetched products",
		"destination", regionID,
		"query", query,
		"count", len(resp.Products),
	)

	return s.transformProducts(resp.Products), nil
}

func (s *Source) call(ctx context.Context, op, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	var err error
	attempt := 1
	for ; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, op, method, s.baseURL+path, payload, out)
		if err == nil {
			return nil
		}

		if attempt == s.maxAttempts || !isRetryable(err) {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.metrics.IncProviderRetries()
		s.logger.Warn("request failed, retrying",
			"operation", op,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	if attempt > 1 {
		return fmt.Errorf("after %d attempts: %w", attempt, err)
	}
	return err
}

func (s *Source) doRequest(ctx context.Context, op, method, url string, payload []byte, out any) (err error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	start := s.now()
	defer func() {
		s.metrics.ObserveProviderRequest(op, resultLabel(err), s.now().Sub(start))
	}()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json;version=2.0")
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("User-Agent", "TourSync/1.0")
	if s.apiKey != "" {
		req.Header.Set("exp-api-key", s.apiKey)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Operation: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &decodeError{Err: err}
	}

	return nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transformDestinations(destinations []Destination) []domain.Region {
	fetchedAt := s.now().UTC()
	regions := make([]domain.Region, 0, len(destinations))

	for _, d := range destinations {
		region := domain.Region{
			ID:        strconv.FormatInt(d.DestinationID, 10),
			Name:      d.Name,
			Type:      d.Type,
			FetchedAt: fetchedAt,
		}

		if d.ParentDestinationID != nil {
			parent := strconv.FormatInt(*d.ParentDestinationID, 10)
			region.ParentID = &parent
		}

		if d.Center != nil && d.Center.Latitude != nil && d.Center.Longitude != nil {
			region.Center = &domain.Coordinate{
				Longitude: *d.Center.Longitude,
				Latitude:  *d.Center.Latitude,
			}
		}

		regions = append(regions, region)
	}

	return regions
}

func (s *Source) transformProducts(products []Product) []domain.TourOffer {
	refreshedAt := s.now().UTC()
	offers := make([]domain.TourOffer, 0, len(products))

	for _, p := range products {
		if p.ProductCode == "" {
			s.logger.Warn("skipping product without code", "title", p.Title)
			continue
		}

		offer := domain.TourOffer{
			ProviderTourID: p.ProductCode,
			Title:          p.Title,
			Description:    p.Description,
			Currency:       s.currency,
			BookingURL:     p.ProductURL,
			ImageURL:       s.pickImage(p.Images),
			LastRefreshed:  refreshedAt,
		}

		if p.Pricing != nil {
			if p.Pricing.Currency != "" {
				offer.Currency = p.Pricing.Currency
			}
			if p.Pricing.Summary != nil && p.Pricing.Summary.FromPrice != nil {
				price := *p.Pricing.Summary.FromPrice
				offer.Price = &price
			}
		}

		if p.Reviews != nil {
			if len(p.Reviews.Sources) > 0 && p.Reviews.Sources[0].AverageRating != nil {
				rating := *p.Reviews.Sources[0].AverageRating
				offer.Rating = &rating
			}
			if p.Reviews.TotalReviews != nil {
				offer.ReviewCount = *p.Reviews.TotalReviews
			}
		}

		offers = append(offers, offer)
	}

	return offers
}

// pickImage returns the first variant with the preferred height.
func (s *Source) pickImage(images []Image) *string {
	for _, img := range images {
		for _, v := range img.Variants {
			if v.Height == s.imageHeight && v.URL != "" {
				url := v.URL
				return &url
			}
		}
	}
	return nil
}
