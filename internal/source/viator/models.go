package viator

// DestinationsResponse is the body of GET /destinations.
type DestinationsResponse struct {
	Destinations []Destination `json:"destinations"`
	TotalCount   int           `json:"totalCount"`
}

type Destination struct {
	DestinationID       int64   `json:"destinationId"`
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	ParentDestinationID *int64  `json:"parentDestinationId"`
	Center              *Center `json:"center"`
}

type Center struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// SearchRequest is the body of POST /products/search.
type SearchRequest struct {
	Filtering  SearchFiltering  `json:"filtering"`
	Sorting    SearchSorting    `json:"sorting"`
	Pagination SearchPagination `json:"pagination"`
	Currency   string           `json:"currency"`
}

type SearchFiltering struct {
	Text        string `json:"text"`
	Destination string `json:"destination"`
}

type SearchSorting struct {
	Sort  string `json:"sort"`
	Order string `json:"order"`
}

type SearchPagination struct {
	Start int `json:"start"`
	Count int `json:"count"`
}

type SearchResponse struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"totalCount"`
}

type Product struct {
	ProductCode string   `json:"productCode"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProductURL  string   `json:"productUrl"`
	Images      []Image  `json:"images"`
	Reviews     *Reviews `json:"reviews"`
	Pricing     *Pricing `json:"pricing"`
}

type Image struct {
	IsCover  bool           `json:"isCover"`
	Variants []ImageVariant `json:"variants"`
}

type ImageVariant struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	URL    string `json:"url"`
}

type Reviews struct {
	Sources      []ReviewSource `json:"sources"`
	TotalReviews *int           `json:"totalReviews"`
}

type ReviewSource struct {
	Provider      string   `json:"provider"`
	TotalCount    int      `json:"totalCount"`
	AverageRating *float64 `json:"averageRating"`
}

type Pricing struct {
	Summary  *PriceSummary `json:"summary"`
	Currency string        `json:"currency"`
}

type PriceSummary struct {
	FromPrice *float64 `json:"fromPrice"`
}
