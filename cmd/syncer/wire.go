package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"tour_sync/internal/destination"
	"tour_sync/internal/publisher"
	"tour_sync/internal/ranking"
	"tour_sync/internal/service"
	"tour_sync/internal/source/viator"
	"tour_sync/internal/storage/postgres"
)

// components is the fully wired engine.
type components struct {
	db        *sqlx.DB
	sync      *service.SyncService
	tours     *service.TourService
	publisher service.Publisher
}

func (c *components) Close() {
	if c.publisher != nil {
		_ = c.publisher.Close()
	}
	if c.db != nil {
		_ = c.db.Close()
	}
}

func (a *app) openDB(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", a.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	a.logger.Info("connected to database")
	return db, nil
}

// newPublisher returns nil when publishing is disabled.
func (a *app) newPublisher() (service.Publisher, error) {
	if !a.cfg.RabbitMQ.Enabled {
		return nil, nil
	}
	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
	}, a.logger)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

// newSubscriber returns nil when publishing is disabled.
func (a *app) newSubscriber() (*publisher.Subscriber, error) {
	if !a.cfg.RabbitMQ.Enabled {
		return nil, nil
	}
	return publisher.NewSubscriber(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
	}, a.logger)
}

func (a *app) newEngine() *ranking.Engine {
	return ranking.New(ranking.Params{
		PriorWeight:          a.cfg.Ranking.PriorWeight,
		PriorMean:            *a.cfg.Ranking.PriorMean,
		PricePenaltyPerPoint: a.cfg.Ranking.PricePenaltyPerPoint,
		StopWords:            a.cfg.Ranking.StopWords,
	})
}

func (a *app) wire(ctx context.Context) (*components, error) {
	db, err := a.openDB(ctx)
	if err != nil {
		return nil, err
	}
	c := &components{db: db}

	pub, err := a.newPublisher()
	if err != nil {
		c.Close()
		return nil, err
	}
	c.publisher = pub

	sites := postgres.NewSiteStore(db)
	offers := postgres.NewOfferStore(db)
	txManager := postgres.NewTransactionManager(db)

	source := viator.New(viator.Config{
		BaseURL:           a.cfg.Provider.BaseURL,
		APIKey:            a.cfg.Provider.APIKey,
		PageSize:          a.cfg.Provider.PageSize,
		Currency:          a.cfg.Provider.Currency,
		ImageHeight:       a.cfg.Provider.ImageHeight,
		Timeout:           a.cfg.Provider.Timeout,
		RequestsPerSecond: a.cfg.Provider.RequestsPerSecond,
		MaxAttempts:       a.cfg.Provider.Retry.MaxAttempts,
		InitialBackoff:    a.cfg.Provider.Retry.InitialBackoff,
		MaxBackoff:        a.cfg.Provider.Retry.MaxBackoff,
	}, a.metrics, a.logger)

	regions := destination.New(
		postgres.NewRegionStore(db),
		source,
		destination.Config{TTL: a.cfg.Sync.RegionCatalogTTL},
		a.metrics,
		a.logger,
	)

	c.tours = service.NewTourService(sites, offers, a.newEngine(), a.cfg.Ranking, a.metrics, a.logger)
	c.sync = service.NewSyncService(
		sites,
		offers,
		source,
		regions,
		txManager,
		c.publisher,
		c.tours,
		a.metrics,
		a.logger,
		a.cfg.Sync,
	)

	a.logger.Info("engine wired",
		"source", source.Name(),
		"publisher_enabled", a.cfg.RabbitMQ.Enabled,
		"concurrency", a.cfg.Sync.Concurrency,
	)
	return c, nil
}
