package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tour_sync/internal/domain"
)

// Syncer runs one sync batch.
type Syncer interface {
	RunBatch(ctx context.Context, req domain.BatchRequest) (*domain.BatchReport, error)
}

type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs a default batch immediately and then on every tick until ctx is
// done. Batches never overlap.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "run_timeout", s.runTimeout)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	report, err := s.syncer.RunBatch(syncCtx, domain.BatchRequest{})
	if err != nil {
		s.logger.Error("sync failed", "error", err)
		return
	}
	s.logger.Info("scheduled batch finished",
		"run_id", report.RunID,
		"sites", len(report.Outcomes),
		"duration", report.Duration,
	)
}
