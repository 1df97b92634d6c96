package main

import (
	"context"
	"time"

	"tour_sync/internal/domain"
)

type batchRunner interface {
	RunBatch(ctx context.Context, req domain.BatchRequest) (*domain.BatchReport, error)
}

// timeoutRunner bounds every batch with its own deadline.
type timeoutRunner struct {
	runner  batchRunner
	timeout time.Duration
}

func (t timeoutRunner) RunBatch(ctx context.Context, req domain.BatchRequest) (*domain.BatchReport, error) {
	if t.timeout <= 0 {
		return t.runner.RunBatch(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.runner.RunBatch(ctx, req)
}

// drainBatches repeats default batches of limit sites. It stops after a short
// or empty batch, once a site comes round a second time, or after maxRuns
// batches when maxRuns > 0.
func drainBatches(
	ctx context.Context,
	runner batchRunner,
	limit, maxRuns int,
	onReport func(*domain.BatchReport),
) (int, error) {
	seen := make(map[string]struct{})
	runs := 0

	for maxRuns <= 0 || runs < maxRuns {
		if err := ctx.Err(); err != nil {
			return runs, err
		}

		report, err := runner.RunBatch(ctx, domain.BatchRequest{Limit: limit})
		if err != nil {
			return runs, err
		}
		runs++
		onReport(report)

		if len(report.Outcomes) < limit {
			return runs, nil
		}

		wrapped := false
		for _, o := range report.Outcomes {
			if _, ok := seen[o.SiteID]; ok {
				wrapped = true
			}
			seen[o.SiteID] = struct{}{}
		}
		if wrapped {
			return runs, nil
		}
	}
	return runs, nil
}
