package engine

import (
	"sort"

	"github.com/vendhub/storefront/pkg/models"
)

// ExpandPurchases proposes products from the categories a user has bought in,
// never repeating a product they already purchased. Results are ordered by
// view count descending. Users without purchase history get an empty list.
func ExpandPurchases(catalog []models.Product, interactions []models.ProductInteraction, limit int) []models.Product {
	byID := make(map[int64]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	purchased := make(map[int64]struct{})
	categories := make(map[string]struct{})
	for _, in := range interactions {
		if in.Type != models.InteractionPurchase {
			continue
		}
		purchased[in.ProductID] = struct{}{}
		if p, ok := byID[in.ProductID]; ok {
			categories[p.Category] = struct{}{}
		}
	}
	if len(categories) == 0 {
		return nil
	}

	var expanded []models.Product
	for _, p := range catalog {
		if _, bought := purchased[p.ID]; bought {
			continue
		}
		if _, ok := categories[p.Category]; !ok {
			continue
		}
		expanded = append(expanded, p)
	}

	sort.SliceStable(expanded, func(i, j int) bool {
		return expanded[i].Views > expanded[j].Views
	})

	if limit > 0 && len(expanded) > limit {
		expanded = expanded[:limit]
	}
	return expanded
}
