package engine

import "github.com/vendhub/storefront/pkg/models"

// RankedSet is an insertion-ordered set of products keyed by product ID.
// First insertion wins; later duplicates are ignored. It backs both the
// recommendation merger and the search-history matcher.
type RankedSet struct {
	seen  map[int64]struct{}
	items []models.Product
}

func NewRankedSet() *RankedSet {
	return &RankedSet{seen: make(map[int64]struct{})}
}

// Add inserts p unless a product with the same ID is already present.
// It reports whether the product was added.
func (s *RankedSet) Add(p models.Product) bool {
	if _, ok := s.seen[p.ID]; ok {
		return false
	}
	s.seen[p.ID] = struct{}{}
	s.items = append(s.items, p)
	return true
}

func (s *RankedSet) Len() int {
	return len(s.items)
}

// Products returns the retained products in first-seen order.
func (s *RankedSet) Products() []models.Product {
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Merge concatenates the given lists in order, deduplicates by product ID
// keeping the first occurrence, and truncates to limit. Earlier lists win
// ties, so the base ranking always takes precedence over expansions.
func Merge(limit int, lists ...[]models.Product) []models.Product {
	set := NewRankedSet()
	for _, list := range lists {
		for _, p := range list {
			set.Add(p)
		}
	}
	merged := set.Products()
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
