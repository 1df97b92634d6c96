package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"tour_sync/internal/domain"
)

type SiteStore interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.Site, error)
	GetByID(ctx context.Context, id string) (*domain.Site, error)
	SearchByName(ctx context.Context, term string, limit int) ([]domain.Site, error)
	ListStalest(ctx context.Context, limit int) ([]domain.Site, error)
	MarkSynced(ctx context.Context, siteID string, at time.Time, status domain.SiteSyncStatus) error
}

type OfferStore interface {
	UpsertBatch(ctx context.Context, siteID string, offers []domain.TourOffer) error
	DeleteExcept(ctx context.Context, siteID string, keepIDs []string) (int64, error)
	TopByReviews(ctx context.Context, siteID string, limit int) ([]domain.TourOffer, error)
}

type TourSource interface {
	SearchTours(ctx context.Context, regionID, query string) ([]domain.TourOffer, error)
}

type RegionResolver interface {
	EnsureLoaded(ctx context.Context) error
	NearestRegion(point domain.Coordinate, maxDistanceKm float64) (domain.Region, bool)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishSiteTours(ctx context.Context, event domain.SiteToursEvent) error
	Close() error
}

type TourCache interface {
	Invalidate(siteID string)
}
