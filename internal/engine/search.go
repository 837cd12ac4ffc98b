package engine

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/vendhub/storefront/pkg/models"
)

// MatchSearches recommends products whose name, description, or category
// contains one of the user's recent search terms as a case-insensitive
// substring. Terms are expected most recent first and each term contributes
// at most perTerm matches; the per-term cap applies before the global
// dedupe, so a term with more relevant products than perTerm drops the
// remainder even when the final list has room. Duplicates across terms keep
// their first (most recent term's) position.
func MatchSearches(catalog []models.Product, terms []string, perTerm int) []models.Product {
	fold := cases.Fold()

	set := NewRankedSet()
	for _, term := range terms {
		needle := fold.String(term)
		if needle == "" {
			continue
		}
		matched := 0
		for _, p := range catalog {
			if matched >= perTerm {
				break
			}
			if containsFolded(fold, p, needle) {
				set.Add(p)
				matched++
			}
		}
	}
	return set.Products()
}

func containsFolded(fold cases.Caser, p models.Product, needle string) bool {
	return strings.Contains(fold.String(p.Name), needle) ||
		strings.Contains(fold.String(p.Description), needle) ||
		strings.Contains(fold.String(p.Category), needle)
}
