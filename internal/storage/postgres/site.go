package postgres

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tour_sync/internal/domain"
)

type SiteStore struct {
	db *sqlx.DB
}

func NewSiteStore(db *sqlx.DB) *SiteStore {
	return &SiteStore{db: db}
}

type siteRow struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	Coordinates    []byte     `db:"coordinates"`
	LastTourSyncAt *time.Time `db:"last_tour_sync_at"`
	TourSyncStatus *string    `db:"tour_sync_status"`
}

// coordinatesJSON is the shape the content subsystem stores; either member
// may be missing.
type coordinatesJSON struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

const siteColumns = `id, name, coordinates, last_tour_sync_at, tour_sync_status`

func (r siteRow) toDomain() domain.Site {
	return domain.Site{
		ID:           r.ID,
		Name:         r.Name,
		Location:     parseCoordinates(r.Coordinates),
		LastSyncedAt: r.LastTourSyncAt,
		SyncStatus:   r.TourSyncStatus,
	}
}

// parseCoordinates converts the stored JSON into a typed value. Anything
// incomplete or malformed yields nil.
func parseCoordinates(raw []byte) *domain.Coordinate {
	if len(raw) == 0 {
		return nil
	}
	var c coordinatesJSON
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil
	}
	if c.Longitude == nil || c.Latitude == nil {
		return nil
	}
	return &domain.Coordinate{Longitude: *c.Longitude, Latitude: *c.Latitude}
}

// GetByIDs returns the sites in the order of ids. Unknown ids are omitted.
func (s *SiteStore) GetByIDs(ctx context.Context, ids []string) ([]domain.Site, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = ANY($1)`

	var rows []siteRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	byID := make(map[string]siteRow, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	sites := make([]domain.Site, 0, len(rows))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		sites = append(sites, r.toDomain())
	}
	return sites, nil
}

func (s *SiteStore) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	sites, err := s.GetByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, domain.ErrSiteNotFound
	}
	return &sites[0], nil
}

// SearchByName matches a case-insensitive substring of the site name.
func (s *SiteStore) SearchByName(ctx context.Context, term string, limit int) ([]domain.Site, error) {
	query := `
		SELECT ` + siteColumns + `
		FROM sites
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY name, id
		LIMIT $2`

	var rows []siteRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, escapeLike(term), limit); err != nil {
		return nil, err
	}
	return toSites(rows), nil
}

// ListStalest returns never-synced sites first, then the oldest synced.
func (s *SiteStore) ListStalest(ctx context.Context, limit int) ([]domain.Site, error) {
	query := `
		SELECT ` + siteColumns + `
		FROM sites
		ORDER BY last_tour_sync_at ASC NULLS FIRST, id
		LIMIT $1`

	var rows []siteRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, limit); err != nil {
		return nil, err
	}
	return toSites(rows), nil
}

// MarkSynced stamps the sync time and status on a site.
func (s *SiteStore) MarkSynced(ctx context.Context, siteID string, at time.Time, status domain.SiteSyncStatus) error {
	query := `
		UPDATE sites
		SET last_tour_sync_at = $2, tour_sync_status = $3
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, siteID, at.UTC(), string(status))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

func toSites(rows []siteRow) []domain.Site {
	sites := make([]domain.Site, len(rows))
	for i, r := range rows {
		sites[i] = r.toDomain()
	}
	return sites
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
