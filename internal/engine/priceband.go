package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/vendhub/storefront/pkg/models"
)

// PriceBand derives a user's price-affinity band from the prices of products
// they viewed or purchased: [mean - stddev, mean + stddev], floored at zero.
// Population standard deviation keeps parity with the SQL STDDEV aggregate.
// Returns nil when no qualifying interactions exist, which callers treat as
// "no price constraint". A single engaged product yields a zero-width band.
func PriceBand(interactions []models.ProductInteraction, catalog []models.Product) *models.PriceRange {
	prices := engagedPrices(interactions, catalog)
	if len(prices) == 0 {
		return nil
	}

	mean := stat.Mean(prices, nil)
	stddev := stat.PopStdDev(prices, nil)

	return &models.PriceRange{
		Min: math.Max(0, mean-stddev),
		Max: mean + stddev,
	}
}

// engagedPrices collects the prices of the distinct products behind the
// user's view and purchase interactions.
func engagedPrices(interactions []models.ProductInteraction, catalog []models.Product) []float64 {
	byID := make(map[int64]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	seen := make(map[int64]struct{})
	var prices []float64
	for _, in := range interactions {
		if in.Type != models.InteractionView && in.Type != models.InteractionPurchase {
			continue
		}
		if _, ok := seen[in.ProductID]; ok {
			continue
		}
		seen[in.ProductID] = struct{}{}
		if p, ok := byID[in.ProductID]; ok {
			prices = append(prices, p.Price)
		}
	}
	return prices
}
