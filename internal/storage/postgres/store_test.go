package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour_sync/internal/domain"
	"tour_sync/internal/testutil"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

var siteCols = []string{"id", "name", "coordinates", "last_tour_sync_at", "tour_sync_status"}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want *domain.Coordinate
	}{
		{name: "nil", raw: nil, want: nil},
		{name: "json null", raw: []byte("null"), want: nil},
		{name: "complete", raw: []byte(`{"longitude": 31.13, "latitude": 29.97}`), want: &domain.Coordinate{Longitude: 31.13, Latitude: 29.97}},
		{name: "missing latitude", raw: []byte(`{"longitude": 31.13}`), want: nil},
		{name: "explicit nulls", raw: []byte(`{"longitude": null, "latitude": null}`), want: nil},
		{name: "malformed", raw: []byte(`{"longitude": "east"`), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCoordinates(tt.raw))
		})
	}
}

func TestSiteStore_GetByIDs_PreservesRequestOrder(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewSiteStore(db)
	synced := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(siteCols).
		AddRow("b", "Petra", []byte(`{"longitude": 35.44, "latitude": 30.32}`), synced, "synced_found").
		AddRow("a", "Giza Pyramid Complex", nil, nil, nil)
	mock.ExpectQuery("SELECT id, name, coordinates, last_tour_sync_at, tour_sync_status FROM sites WHERE id = ANY").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	sites, err := store.GetByIDs(context.Background(), []string{"a", "missing", "b", "a"})
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, "a", sites[0].ID)
	assert.Nil(t, sites[0].Location)
	assert.Nil(t, sites[0].LastSyncedAt)

	assert.Equal(t, "b", sites[1].ID)
	require.NotNil(t, sites[1].Location)
	assert.Equal(t, 30.32, sites[1].Location.Latitude)
	require.NotNil(t, sites[1].LastSyncedAt)
	assert.True(t, synced.Equal(*sites[1].LastSyncedAt))
	assert.Equal(t, "synced_found", *sites[1].SyncStatus)
}

func TestSiteStore_GetByIDs_Empty(t *testing.T) {
	db, _ := newMockDB(t)

	sites, err := NewSiteStore(db).GetByIDs(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, sites)
}

func TestSiteStore_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM sites WHERE id = ANY").
		WillReturnRows(sqlmock.NewRows(siteCols))

	_, err := NewSiteStore(db).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)
}

func TestSiteStore_ListStalest(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("ORDER BY last_tour_sync_at ASC NULLS FIRST, id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(siteCols).
			AddRow("never", "Never Synced", nil, nil, nil).
			AddRow("old", "Old", nil, time.Now().Add(-72*time.Hour), "error"))

	sites, err := NewSiteStore(db).ListStalest(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "never", sites[0].ID)
	assert.Equal(t, "old", sites[1].ID)
}

func TestSiteStore_SearchByName_EscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("WHERE name ILIKE").
		WithArgs(`100\% real\_site`, 10).
		WillReturnRows(sqlmock.NewRows(siteCols))

	sites, err := NewSiteStore(db).SearchByName(context.Background(), "100% real_site", 10)
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestSiteStore_MarkSynced(t *testing.T) {
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("updates row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE sites").
			WithArgs("a", at, "synced_found").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewSiteStore(db).MarkSynced(context.Background(), "a", at, domain.SiteSyncedFound))
	})

	t.Run("unknown site", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE sites").
			WithArgs("ghost", at, "error").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewSiteStore(db).MarkSynced(context.Background(), "ghost", at, domain.SiteSyncError)
		assert.ErrorIs(t, err, domain.ErrSiteNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE sites").WillReturnError(sql.ErrConnDone)

		err := NewSiteStore(db).MarkSynced(context.Background(), "a", at, domain.SiteSyncError)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestRegionStore_LoadRegions(t *testing.T) {
	db, mock := newMockDB(t)
	fetched := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM tour_regions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "longitude", "latitude", "parent_id", "type", "fetched_at"}).
			AddRow("782", "Cairo", 31.2357, 30.0444, "722", "CITY", fetched).
			AddRow("722", "Egypt", nil, nil, nil, "COUNTRY", fetched))

	regions, err := NewRegionStore(db).LoadRegions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)

	require.NotNil(t, regions[0].Center)
	assert.Equal(t, 30.0444, regions[0].Center.Latitude)
	assert.Equal(t, "722", *regions[0].ParentID)
	assert.Nil(t, regions[1].Center)
	assert.Nil(t, regions[1].ParentID)
}

func TestRegionStore_ReplaceRegions(t *testing.T) {
	db, mock := newMockDB(t)
	fetched := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	regions := []domain.Region{
		{ID: "782", Name: "Cairo", Type: "CITY", Center: &domain.Coordinate{Longitude: 31.2, Latitude: 30.0}, FetchedAt: fetched},
		{ID: "722", Name: "Egypt", Type: "COUNTRY", FetchedAt: fetched},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tour_regions").
		WithArgs(
			"782", "Cairo", 31.2, 30.0, nil, "CITY", 0, fetched,
			"722", "Egypt", nil, nil, nil, "COUNTRY", 1, fetched,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM tour_regions").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	assert.NoError(t, NewRegionStore(db).ReplaceRegions(context.Background(), regions))
}

func TestRegionStore_ReplaceRegions_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tour_regions").WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()

	err := NewRegionStore(db).ReplaceRegions(context.Background(), []domain.Region{{ID: "1", Name: "X"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert regions")
}

func TestOfferStore_UpsertBatch(t *testing.T) {
	db, mock := newMockDB(t)
	refreshed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	offers := []domain.TourOffer{
		{ProviderTourID: "P1", Title: "Giza day trip", Price: testutil.Ptr(85.0), Currency: "USD", BookingURL: "https://b/1",
			ImageURL: testutil.Ptr("https://img/1"), Rating: testutil.Ptr(4.8), ReviewCount: 2000, LastRefreshed: refreshed},
		{ProviderTourID: "P2", Title: "Pyramids at night", Currency: "USD", LastRefreshed: refreshed},
	}

	mock.ExpectExec("INSERT INTO tour_offers").
		WithArgs(
			"giza", "P1", "Giza day trip", "", 85.0, "USD", "https://b/1", "https://img/1", 4.8, 2000, refreshed,
			"giza", "P2", "Pyramids at night", "", nil, "USD", "", nil, nil, 0, refreshed,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, NewOfferStore(db).UpsertBatch(context.Background(), "giza", offers))
}

func TestOfferStore_UpsertBatch_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	assert.NoError(t, NewOfferStore(db).UpsertBatch(context.Background(), "giza", nil))
}

func TestOfferStore_DeleteExcept(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM tour_offers WHERE site_id").
		WithArgs("giza", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewOfferStore(db).DeleteExcept(context.Background(), "giza", []string{"P1"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestOfferStore_TopByReviews(t *testing.T) {
	db, mock := newMockDB(t)
	refreshed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY review_count DESC").
		WithArgs("giza", 100).
		WillReturnRows(sqlmock.NewRows([]string{
			"site_id", "provider_tour_id", "title", "description", "price", "currency",
			"booking_url", "image_url", "rating", "review_count", "last_refreshed_at",
		}).
			AddRow("giza", "P1", "Giza day trip", "", 85.0, "USD", "https://b/1", nil, 4.8, 2000, refreshed).
			AddRow("giza", "P2", "Pyramids at night", "", nil, "USD", "", nil, nil, 0, refreshed))

	offers, err := NewOfferStore(db).TopByReviews(context.Background(), "giza", 100)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, 85.0, *offers[0].Price)
	assert.Nil(t, offers[1].Price)
	assert.Nil(t, offers[1].Rating)
}

func TestTransactionManager(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE sites").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewTransactionManager(db).WithTransaction(context.Background(), func(ctx context.Context) error {
			require.NotNil(t, GetTxFromContext(ctx))
			return NewSiteStore(db).MarkSynced(ctx, "a", time.Now(), domain.SiteSyncedEmpty)
		})
		assert.NoError(t, err)
	})

	t.Run("rollback", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := NewTransactionManager(db).WithTransaction(context.Background(), func(context.Context) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("nested reuses outer", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		tm := NewTransactionManager(db)
		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			outer := GetTxFromContext(ctx)
			return tm.WithTransaction(ctx, func(inner context.Context) error {
				assert.Same(t, outer, GetTxFromContext(inner))
				return nil
			})
		})
		assert.NoError(t, err)
	})
}
