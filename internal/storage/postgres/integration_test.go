//go:build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tour_sync/internal/domain"
	"tour_sync/internal/testutil"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Require().NoError(RunMigrations(connStr, logger))
	// second run is a no-op
	s.Require().NoError(RunMigrations(connStr, logger))

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tour_offers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tour_regions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sites")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertSite(id, name string, coordinates *string, syncedAt *time.Time) {
	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO sites (id, name, coordinates, last_tour_sync_at) VALUES ($1, $2, $3::jsonb, $4)`,
		id, name, coordinates, syncedAt)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestSiteStore_GetByIDs() {
	s.insertSite("giza", "Giza Pyramid Complex", testutil.Ptr(`{"longitude": 31.1342, "latitude": 29.9792}`), nil)
	s.insertSite("petra", "Petra", testutil.Ptr(`{"longitude": 35.4444}`), nil)

	store := NewSiteStore(s.db)
	sites, err := store.GetByIDs(s.ctx, []string{"petra", "unknown", "giza"})
	s.NoError(err)
	s.Require().Len(sites, 2)

	s.Equal("petra", sites[0].ID)
	s.Nil(sites[0].Location)
	s.Equal("giza", sites[1].ID)
	s.Require().NotNil(sites[1].Location)
	s.InDelta(29.9792, sites[1].Location.Latitude, 1e-9)
}

func (s *PostgresIntegrationSuite) TestSiteStore_ListStalest_NeverSyncedFirst() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.insertSite("recent", "Recent", nil, testutil.Ptr(now))
	s.insertSite("old", "Old", nil, testutil.Ptr(now.Add(-48*time.Hour)))
	s.insertSite("never", "Never", nil, nil)

	sites, err := NewSiteStore(s.db).ListStalest(s.ctx, 2)
	s.NoError(err)
	s.Require().Len(sites, 2)
	s.Equal("never", sites[0].ID)
	s.Equal("old", sites[1].ID)
}

func (s *PostgresIntegrationSuite) TestSiteStore_ListStalest_StampedSitesMoveBehind() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.insertSite("a", "Angkor Wat", nil, nil)
	s.insertSite("b", "Borobudur", nil, nil)
	s.insertSite("c", "Chichen Itza", nil, testutil.Ptr(now.Add(-72*time.Hour)))
	s.insertSite("d", "Delphi", nil, testutil.Ptr(now.Add(-24*time.Hour)))

	store := NewSiteStore(s.db)

	first, err := store.ListStalest(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(first, 2)
	s.Equal([]string{"a", "b"}, []string{first[0].ID, first[1].ID})

	for _, site := range first {
		s.Require().NoError(store.MarkSynced(s.ctx, site.ID, now, domain.SiteSyncedEmpty))
	}

	second, err := store.ListStalest(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(second, 2)
	s.Equal([]string{"c", "d"}, []string{second[0].ID, second[1].ID})

	all, err := store.ListStalest(s.ctx, 4)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Equal([]string{"c", "d", "a", "b"}, []string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})
}

func (s *PostgresIntegrationSuite) TestSiteStore_SearchByName() {
	s.insertSite("a", "Angkor Wat", nil, nil)
	s.insertSite("b", "Machu Picchu", nil, nil)
	s.insertSite("c", "100% Pure Site", nil, nil)

	store := NewSiteStore(s.db)

	sites, err := store.SearchByName(s.ctx, "WAT", 10)
	s.NoError(err)
	s.Require().Len(sites, 1)
	s.Equal("a", sites[0].ID)

	sites, err = store.SearchByName(s.ctx, "%", 10)
	s.NoError(err)
	s.Require().Len(sites, 1)
	s.Equal("c", sites[0].ID)
}

func (s *PostgresIntegrationSuite) TestSiteStore_MarkSynced() {
	s.insertSite("giza", "Giza", nil, nil)
	store := NewSiteStore(s.db)
	at := time.Now().UTC().Truncate(time.Microsecond)

	s.NoError(store.MarkSynced(s.ctx, "giza", at, domain.SiteSyncedFound))

	site, err := store.GetByID(s.ctx, "giza")
	s.NoError(err)
	s.Require().NotNil(site.LastSyncedAt)
	s.WithinDuration(at, *site.LastSyncedAt, time.Millisecond)
	s.Equal("synced_found", *site.SyncStatus)

	s.ErrorIs(store.MarkSynced(s.ctx, "ghost", at, domain.SiteSyncError), domain.ErrSiteNotFound)
}

func (s *PostgresIntegrationSuite) TestRegionStore_ReplaceRegions() {
	store := NewRegionStore(s.db)
	fetched := time.Now().UTC().Truncate(time.Microsecond)

	err := store.ReplaceRegions(s.ctx, []domain.Region{
		{ID: "722", Name: "Egypt", Type: "COUNTRY", FetchedAt: fetched},
		{ID: "782", Name: "Cairo", Type: "CITY", ParentID: testutil.Ptr("722"),
			Center: &domain.Coordinate{Longitude: 31.2357, Latitude: 30.0444}, FetchedAt: fetched},
		{ID: "999", Name: "Gone", FetchedAt: fetched},
	})
	s.NoError(err)

	err = store.ReplaceRegions(s.ctx, []domain.Region{
		{ID: "782", Name: "Cairo City", Type: "CITY",
			Center: &domain.Coordinate{Longitude: 31.2357, Latitude: 30.0444}, FetchedAt: fetched},
		{ID: "722", Name: "Egypt", Type: "COUNTRY", FetchedAt: fetched},
	})
	s.NoError(err)

	regions, err := store.LoadRegions(s.ctx)
	s.NoError(err)
	s.Require().Len(regions, 2)
	s.Equal("Cairo City", regions[0].Name)
	s.Require().NotNil(regions[0].Center)
	s.Nil(regions[0].ParentID)
	s.Equal("722", regions[1].ID)
	s.Nil(regions[1].Center)
}

func (s *PostgresIntegrationSuite) TestOfferStore_UpsertDeleteAndTop() {
	s.insertSite("giza", "Giza", nil, nil)
	store := NewOfferStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := store.UpsertBatch(s.ctx, "giza", []domain.TourOffer{
		{ProviderTourID: "P1", Title: "Camel ride", Currency: "USD", ReviewCount: 10, LastRefreshed: now},
		{ProviderTourID: "P2", Title: "Giza day trip", Price: testutil.Ptr(85.0), Currency: "USD",
			Rating: testutil.Ptr(4.8), ReviewCount: 2000, LastRefreshed: now},
		{ProviderTourID: "P3", Title: "Stale", Currency: "USD", ReviewCount: 500, LastRefreshed: now},
	})
	s.NoError(err)

	err = store.UpsertBatch(s.ctx, "giza", []domain.TourOffer{
		{ProviderTourID: "P1", Title: "Camel ride at sunset", Currency: "USD", ReviewCount: 3000, LastRefreshed: now},
	})
	s.NoError(err)

	deleted, err := store.DeleteExcept(s.ctx, "giza", []string{"P1", "P2"})
	s.NoError(err)
	s.Equal(int64(1), deleted)

	offers, err := store.TopByReviews(s.ctx, "giza", 100)
	s.NoError(err)
	s.Require().Len(offers, 2)
	s.Equal("P1", offers[0].ProviderTourID)
	s.Equal("Camel ride at sunset", offers[0].Title)
	s.Nil(offers[0].Price)
	s.Equal("P2", offers[1].ProviderTourID)
	s.InDelta(85.0, *offers[1].Price, 1e-9)

	offers, err = store.TopByReviews(s.ctx, "giza", 1)
	s.NoError(err)
	s.Len(offers, 1)
}

func (s *PostgresIntegrationSuite) TestOfferStore_DeleteExcept_EmptyKeepClearsSite() {
	s.insertSite("giza", "Giza", nil, nil)
	store := NewOfferStore(s.db)

	s.NoError(store.UpsertBatch(s.ctx, "giza", []domain.TourOffer{
		{ProviderTourID: "P1", Title: "Tour", Currency: "USD", LastRefreshed: time.Now()},
	}))

	deleted, err := store.DeleteExcept(s.ctx, "giza", nil)
	s.NoError(err)
	s.Equal(int64(1), deleted)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	s.insertSite("giza", "Giza", nil, nil)
	tm := NewTransactionManager(s.db)
	offers := NewOfferStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return offers.UpsertBatch(ctx, "giza", []domain.TourOffer{
			{ProviderTourID: "P1", Title: "Tour", Currency: "USD", LastRefreshed: time.Now()},
		})
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tour_offers WHERE site_id = $1", "giza"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	s.insertSite("giza", "Giza", nil, nil)
	tm := NewTransactionManager(s.db)
	offers := NewOfferStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := offers.UpsertBatch(ctx, "giza", []domain.TourOffer{
			{ProviderTourID: "P1", Title: "Should Rollback", Currency: "USD", LastRefreshed: time.Now()},
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tour_offers"))
	s.Equal(0, count)
}
