package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tour_sync/internal/domain"
)

type BatchRunner interface {
	RunBatch(ctx context.Context, req domain.BatchRequest) (*domain.BatchReport, error)
}

type TourRanker interface {
	RankedTours(ctx context.Context, siteID string, topN int) ([]domain.TourOffer, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
