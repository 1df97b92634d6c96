package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tour_sync/internal/domain"
)

const maxBatchBody = 1 << 20

// HandlerConfig holds request defaults. A zero BatchTimeout leaves batches
// bound only by the request context.
type HandlerConfig struct {
	DefaultTopN  int
	BatchTimeout time.Duration
}

type Handler struct {
	batches BatchRunner
	tours   TourRanker
	db      Pinger
	cfg     HandlerConfig
	logger  *slog.Logger
}

// NewHandler builds the API handlers. db may be nil.
func NewHandler(batches BatchRunner, tours TourRanker, db Pinger, cfg HandlerConfig, logger *slog.Logger) *Handler {
	return &Handler{
		batches: batches,
		tours:   tours,
		db:      db,
		cfg:     cfg,
		logger:  logger,
	}
}

type batchResponse struct {
	RunID      string                       `json:"runId"`
	Outcomes   []domain.SyncOutcome         `json:"outcomes"`
	Summary    map[domain.OutcomeStatus]int `json:"summary"`
	DurationMs int64                        `json:"durationMs"`
}

// RunBatch handles POST /api/v1/sync. An empty body runs a default batch.
func (h *Handler) RunBatch(w http.ResponseWriter, r *http.Request) {
	var req domain.BatchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Limit < 0 {
		h.writeError(w, r, http.StatusBadRequest, "limit must not be negative")
		return
	}

	ctx := r.Context()
	if h.cfg.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.BatchTimeout)
		defer cancel()
	}

	report, err := h.batches.RunBatch(ctx, req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "batch failed", slog.Any("error", err))
		h.writeError(w, r, http.StatusBadGateway, err.Error())
		return
	}

	h.writeJSON(w, r, http.StatusOK, batchResponse{
		RunID:      report.RunID.String(),
		Outcomes:   report.Outcomes,
		Summary:    report.Counts(),
		DurationMs: report.Duration.Milliseconds(),
	})
}

type toursResponse struct {
	SiteID string             `json:"siteId"`
	Tours  []domain.TourOffer `json:"tours"`
}

// SiteTours handles GET /api/v1/sites/{siteID}/tours?limit=N.
func (h *Handler) SiteTours(w http.ResponseWriter, r *http.Request) {
	siteID := chi.URLParam(r, "siteID")

	limit := h.cfg.DefaultTopN
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	tours, err := h.tours.RankedTours(r.Context(), siteID, limit)
	switch {
	case errors.Is(err, domain.ErrSiteNotFound):
		h.writeError(w, r, http.StatusNotFound, "site not found")
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "ranked tours failed", slog.String("site_id", siteID), slog.Any("error", err))
		h.writeError(w, r, http.StatusInternalServerError, "failed to load tours")
		return
	}

	h.writeJSON(w, r, http.StatusOK, toursResponse{SiteID: siteID, Tours: tours})
}

// Health reports whether the database answers a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
