package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tour_sync/internal/domain"
)

// regionBatchSize keeps each insert under the bind parameter limit.
const regionBatchSize = 1000

type RegionStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewRegionStore(db *sqlx.DB) *RegionStore {
	return &RegionStore{db: db, tx: NewTransactionManager(db)}
}

type regionRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Longitude *float64  `db:"longitude"`
	Latitude  *float64  `db:"latitude"`
	ParentID  *string   `db:"parent_id"`
	Type      string    `db:"type"`
	FetchedAt time.Time `db:"fetched_at"`
}

// LoadRegions returns the cached catalog in provider order.
func (s *RegionStore) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	query := `
		SELECT id, name, longitude, latitude, parent_id, type, fetched_at
		FROM tour_regions
		ORDER BY position, id`

	var rows []regionRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query); err != nil {
		return nil, err
	}

	regions := make([]domain.Region, len(rows))
	for i, r := range rows {
		regions[i] = domain.Region{
			ID:        r.ID,
			Name:      r.Name,
			ParentID:  r.ParentID,
			Type:      r.Type,
			FetchedAt: r.FetchedAt,
		}
		if r.Longitude != nil && r.Latitude != nil {
			regions[i].Center = &domain.Coordinate{Longitude: *r.Longitude, Latitude: *r.Latitude}
		}
	}
	return regions, nil
}

// ReplaceRegions upserts every region by id and deletes the rest, in one
// transaction.
func (s *RegionStore) ReplaceRegions(ctx context.Context, regions []domain.Region) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		for start := 0; start < len(regions); start += regionBatchSize {
			end := min(start+regionBatchSize, len(regions))
			if err := upsertRegions(ctx, exec, regions[start:end], start); err != nil {
				return fmt.Errorf("upsert regions: %w", err)
			}
		}

		ids := make([]string, len(regions))
		for i, r := range regions {
			ids[i] = r.ID
		}
		if _, err := exec.ExecContext(ctx,
			`DELETE FROM tour_regions WHERE NOT (id = ANY($1))`,
			pq.Array(ids),
		); err != nil {
			return fmt.Errorf("delete stale regions: %w", err)
		}
		return nil
	})
}

func upsertRegions(ctx context.Context, exec sqlx.ExtContext, regions []domain.Region, offset int) error {
	const cols = 8

	var sb strings.Builder
	sb.WriteString("INSERT INTO tour_regions (id, name, longitude, latitude, parent_id, type, position, fetched_at) VALUES ")
	valueArgs := make([]interface{}, 0, len(regions)*cols)

	for i, r := range regions {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 1; c <= cols; c++ {
			if c > 1 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*cols + c))
		}
		sb.WriteString(")")

		var lon, lat *float64
		if r.Center != nil {
			lon, lat = &r.Center.Longitude, &r.Center.Latitude
		}
		fetchedAt := r.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = time.Now()
		}
		valueArgs = append(valueArgs, r.ID, r.Name, lon, lat, r.ParentID, r.Type, offset+i, fetchedAt.UTC())
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		longitude = EXCLUDED.longitude,
		latitude = EXCLUDED.latitude,
		parent_id = EXCLUDED.parent_id,
		type = EXCLUDED.type,
		position = EXCLUDED.position,
		fetched_at = EXCLUDED.fetched_at`)

	_, err := exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}
