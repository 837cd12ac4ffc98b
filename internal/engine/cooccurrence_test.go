package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendhub/storefront/pkg/models"
)

func TestRankByCategoryWeight(t *testing.T) {
	catalog := catalogFixture()

	t.Run("ranks by category population then views", func(t *testing.T) {
		ranked := RankByCategoryWeight(catalog, nil, nil, 10)

		// Electronics (population 3) first, views descending inside the
		// category; books beats clothing on the view-count tie-break.
		assert.Equal(t, []int64{5, 1, 2, 4, 3}, productIDs(ranked))
	})

	t.Run("price band filters candidates", func(t *testing.T) {
		band := &models.PriceRange{Min: 80, Max: 200}
		ranked := RankByCategoryWeight(catalog, band, nil, 10)

		assert.Equal(t, []int64{4, 3}, productIDs(ranked))
	})

	t.Run("preferred categories filter candidates", func(t *testing.T) {
		ranked := RankByCategoryWeight(catalog, nil, []string{"electronics", "books"}, 10)

		for _, p := range ranked {
			assert.Contains(t, []string{"electronics", "books"}, p.Category)
		}
		assert.NotContains(t, productIDs(ranked), int64(3))
	})

	t.Run("population counts come from the whole catalog", func(t *testing.T) {
		// Narrowing to a single electronics product must not shrink the
		// electronics population below the books population.
		band := &models.PriceRange{Min: 85, Max: 1000}
		ranked := RankByCategoryWeight(catalog, band, nil, 10)

		assert.Equal(t, []int64{1, 2, 4, 3}, productIDs(ranked))
	})

	t.Run("result is capped", func(t *testing.T) {
		ranked := RankByCategoryWeight(catalog, nil, nil, 2)
		assert.Len(t, ranked, 2)
	})

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		assert.Empty(t, RankByCategoryWeight(nil, nil, nil, 10))
	})
}

func TestSimilarByCategory(t *testing.T) {
	catalog := catalogFixture()

	t.Run("same category ordered by views, seed excluded", func(t *testing.T) {
		similar := SimilarByCategory(catalog, catalog[0], 5)
		assert.Equal(t, []int64{5, 2}, productIDs(similar))
	})

	t.Run("no category siblings yields empty list", func(t *testing.T) {
		similar := SimilarByCategory(catalog, catalog[2], 5)
		assert.Empty(t, similar)
	})

	t.Run("result is capped", func(t *testing.T) {
		similar := SimilarByCategory(catalog, catalog[0], 1)
		assert.Equal(t, []int64{5}, productIDs(similar))
	})
}
