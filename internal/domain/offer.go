package domain

import "time"

// TourOffer is a bookable tour product attached to a site.
// A nil Price means "price on request", which is not the same as zero.
type TourOffer struct {
	SiteID         string    `json:"siteId"`
	ProviderTourID string    `json:"providerTourId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          *float64  `json:"price"`
	Currency       string    `json:"currency"`
	BookingURL     string    `json:"bookingUrl"`
	ImageURL       *string   `json:"imageUrl"`
	Rating         *float64  `json:"rating"`
	ReviewCount    int       `json:"reviewCount"`
	LastRefreshed  time.Time `json:"lastRefreshed"`
}
