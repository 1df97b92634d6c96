package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tour_sync/internal/domain"
)

type OfferStore struct {
	db *sqlx.DB
}

func NewOfferStore(db *sqlx.DB) *OfferStore {
	return &OfferStore{db: db}
}

type offerRow struct {
	SiteID          string    `db:"site_id"`
	ProviderTourID  string    `db:"provider_tour_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Price           *float64  `db:"price"`
	Currency        string    `db:"currency"`
	BookingURL      string    `db:"booking_url"`
	ImageURL        *string   `db:"image_url"`
	Rating          *float64  `db:"rating"`
	ReviewCount     int       `db:"review_count"`
	LastRefreshedAt time.Time `db:"last_refreshed_at"`
}

// UpsertBatch writes offers keyed by (site_id, provider_tour_id).
func (s *OfferStore) UpsertBatch(ctx context.Context, siteID string, offers []domain.TourOffer) error {
	if len(offers) == 0 {
		return nil
	}

	const cols = 11

	var sb strings.Builder
	sb.WriteString(`INSERT INTO tour_offers (
		site_id, provider_tour_id, title, description, price, currency,
		booking_url, image_url, rating, review_count, last_refreshed_at
	) VALUES `)
	valueArgs := make([]interface{}, 0, len(offers)*cols)

	for i, o := range offers {
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

		valueArgs = append(valueArgs,
			siteID,
			o.ProviderTourID,
			o.Title,
			o.Description,
			o.Price,
			o.Currency,
			o.BookingURL,
			o.ImageURL,
			o.Rating,
			o.ReviewCount,
			o.LastRefreshed.UTC(),
		)
	}
	sb.WriteString(` ON CONFLICT (site_id, provider_tour_id) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		price = EXCLUDED.price,
		currency = EXCLUDED.currency,
		booking_url = EXCLUDED.booking_url,
		image_url = EXCLUDED.image_url,
		rating = EXCLUDED.rating,
		review_count = EXCLUDED.review_count,
		last_refreshed_at = EXCLUDED.last_refreshed_at`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// DeleteExcept removes the site's offers that are not in keepIDs.
func (s *OfferStore) DeleteExcept(ctx context.Context, siteID string, keepIDs []string) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM tour_offers WHERE site_id = $1 AND NOT (provider_tour_id = ANY($2))`,
		siteID, pq.Array(keepIDs),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// TopByReviews returns the site's candidate pool, most reviewed first.
func (s *OfferStore) TopByReviews(ctx context.Context, siteID string, limit int) ([]domain.TourOffer, error) {
	query := `
		SELECT site_id, provider_tour_id, title, description, price, currency,
			booking_url, image_url, rating, review_count, last_refreshed_at
		FROM tour_offers
		WHERE site_id = $1
		ORDER BY review_count DESC, provider_tour_id
		LIMIT $2`

	var rows []offerRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, siteID, limit); err != nil {
		return nil, err
	}

	offers := make([]domain.TourOffer, len(rows))
	for i, r := range rows {
		offers[i] = domain.TourOffer{
			SiteID:         r.SiteID,
			ProviderTourID: r.ProviderTourID,
			Title:          r.Title,
			Description:    r.Description,
			Price:          r.Price,
			Currency:       r.Currency,
			BookingURL:     r.BookingURL,
			ImageURL:       r.ImageURL,
			Rating:         r.Rating,
			ReviewCount:    r.ReviewCount,
			LastRefreshed:  r.LastRefreshedAt,
		}
	}
	return offers, nil
}
