package engine

import (
	"sort"

	"github.com/vendhub/storefront/pkg/models"
)

// RankByCategoryWeight produces the base recommendation list. Candidates are
// optionally narrowed to a price band and a preferred-category set, then
// ranked by how many catalog products share their category (the category
// population count, computed over the whole catalog and including the product
// itself), with view count as the tie-break. Both orderings are descending.
func RankByCategoryWeight(catalog []models.Product, band *models.PriceRange, preferred []string, limit int) []models.Product {
	population := make(map[string]int, 16)
	for _, p := range catalog {
		population[p.Category]++
	}

	var allowed map[string]struct{}
	if len(preferred) > 0 {
		allowed = make(map[string]struct{}, len(preferred))
		for _, c := range preferred {
			allowed[c] = struct{}{}
		}
	}

	var ranked []models.Product
	for _, p := range catalog {
		if band != nil && !band.Contains(p.Price) {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[p.Category]; !ok {
				continue
			}
		}
		ranked = append(ranked, p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := population[ranked[i].Category], population[ranked[j].Category]
		if ci != cj {
			return ci > cj
		}
		return ranked[i].Views > ranked[j].Views
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SimilarByCategory ranks products sharing seed's category by view count,
// excluding the seed itself.
func SimilarByCategory(catalog []models.Product, seed models.Product, limit int) []models.Product {
	var similar []models.Product
	for _, p := range catalog {
		if p.ID == seed.ID || p.Category != seed.Category {
			continue
		}
		similar = append(similar, p)
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Views > similar[j].Views
	})

	if limit > 0 && len(similar) > limit {
		similar = similar[:limit]
	}
	return similar
}
