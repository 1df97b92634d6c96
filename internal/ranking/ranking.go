// Package ranking filters and orders tour offers for display on a site page.
//
// The pipeline is: drop non-positive prices, keep offers whose title mentions
// a keyword of the site name, score by a Bayesian average of the rating,
// subtract a price penalty and keep the best topN. Rank is pure and never
// fails; an empty result means there is nothing to display.
package ranking

import (
	"sort"
	"strings"

	"tour_sync/internal/domain"
)

const (
	DefaultPriorWeight          = 10.0
	DefaultPriorMean            = 4.5
	DefaultPricePenaltyPerPoint = 1000.0
	DefaultTopN                 = 6
	DefaultPoolSize             = 100
	minKeywordLength            = 3
)

// DefaultStopWords are dropped from site names before keyword matching.
var DefaultStopWords = []string{
	"a", "an", "the",
	"of", "in", "on", "at", "to", "for", "by", "from", "with", "and",
	"de", "del", "la", "le", "el", "di",
	"site", "ruins", "park", "ancient", "complex", "great",
}

// Params holds the business tuning values of the score.
type Params struct {
	// PriorWeight is m, the number of virtual reviews at the prior mean.
	PriorWeight float64
	// PriorMean is C, the rating an unreviewed offer gets.
	PriorMean float64
	// PricePenaltyPerPoint is the price that costs one quality point.
	PricePenaltyPerPoint float64
	StopWords            []string
}

// DefaultParams returns the production tuning.
func DefaultParams() Params {
	return Params{
		PriorWeight:          DefaultPriorWeight,
		PriorMean:            DefaultPriorMean,
		PricePenaltyPerPoint: DefaultPricePenaltyPerPoint,
		StopWords:            DefaultStopWords,
	}
}

// Site is the part of a catalog site the ranking needs.
type Site struct {
	ID   string
	Name string
}

// Engine ranks offers with fixed params.
type Engine struct {
	params    Params
	stopWords map[string]struct{}
}

// New builds an engine. A non-positive PriorWeight or PricePenaltyPerPoint
// and nil StopWords fall back to defaults. PriorMean is used as given, since
// zero is a valid prior; start from DefaultParams for the standard tuning.
func New(params Params) *Engine {
	if params.PriorWeight <= 0 {
		params.PriorWeight = DefaultPriorWeight
	}
	if params.PricePenaltyPerPoint <= 0 {
		params.PricePenaltyPerPoint = DefaultPricePenaltyPerPoint
	}
	if params.StopWords == nil {
		params.StopWords = DefaultStopWords
	}

	stop := make(map[string]struct{}, len(params.StopWords))
	for _, w := range params.StopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	return &Engine{params: params, stopWords: stop}
}

// Params returns the effective tuning.
func (e *Engine) Params() Params {
	return e.params
}

type scoredOffer struct {
	offer domain.TourOffer
	score float64
}

// Rank returns at most topN offers for the site, best first.
func (e *Engine) Rank(site Site, offers []domain.TourOffer, topN int) []domain.TourOffer {
	if topN <= 0 || len(offers) == 0 {
		return []domain.TourOffer{}
	}

	keywords := e.Keywords(site.Name)

	scored := make([]scoredOffer, 0, len(offers))
	for _, o := range offers {
		if o.Price != nil && *o.Price <= 0 {
			continue
		}
		if !matchesAny(o.Title, keywords) {
			continue
		}
		scored = append(scored, scoredOffer{offer: o, score: e.FinalScore(o)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	result := make([]domain.TourOffer, len(scored))
	for i, s := range scored {
		result[i] = s.offer
	}
	return result
}

// Keywords lowercases the name, splits it on whitespace and drops stop words
// and tokens of two characters or fewer.
func (e *Engine) Keywords(name string) []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(name)) {
		if len(token) < minKeywordLength {
			continue
		}
		if _, stop := e.stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// QualityScore is the Bayesian average of the offer rating. With zero
// reviews it equals the prior mean regardless of the rating.
func (e *Engine) QualityScore(o domain.TourOffer) float64 {
	n := float64(o.ReviewCount)
	if n < 0 {
		n = 0
	}
	var rating float64
	if o.Rating != nil {
		rating = *o.Rating
	}
	m, c := e.params.PriorWeight, e.params.PriorMean
	return (n*rating + m*c) / (n + m)
}

// FinalScore subtracts the price penalty from the quality score.
func (e *Engine) FinalScore(o domain.TourOffer) float64 {
	var price float64
	if o.Price != nil {
		price = *o.Price
	}
	return e.QualityScore(o) - price/e.params.PricePenaltyPerPoint
}

// matchesAny fails open on an empty keyword set.
func matchesAny(title string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(title)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
