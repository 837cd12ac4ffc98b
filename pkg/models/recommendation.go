package models

// PriceRange is the inclusive band derived from a user's engaged-product
// prices (mean ± standard deviation, floored at zero).
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether p falls inside the band, bounds included.
func (r *PriceRange) Contains(p float64) bool {
	return p >= r.Min && p <= r.Max
}

type RecommendationResponse struct {
	Recommendations []Product   `json:"recommendations"`
	PriceRange      *PriceRange `json:"price_range"`
}

type TrendingResponse struct {
	TrendingProducts []Product `json:"trending_products"`
	TimeFrame        string    `json:"time_frame"`
}

type SearchRecommendationsResponse struct {
	SearchBasedRecommendations []Product `json:"search_based_recommendations"`
}
