package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendhub/storefront/pkg/models"
)

func TestRankedSet(t *testing.T) {
	set := NewRankedSet()

	assert.True(t, set.Add(models.Product{ID: 1}))
	assert.True(t, set.Add(models.Product{ID: 2}))
	assert.False(t, set.Add(models.Product{ID: 1}), "duplicate IDs are rejected")

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []int64{1, 2}, productIDs(set.Products()))
}

func TestMerge(t *testing.T) {
	base := []models.Product{{ID: 1}, {ID: 2}, {ID: 3}}
	expansion := []models.Product{{ID: 2}, {ID: 4}, {ID: 1}, {ID: 5}}

	t.Run("base list wins ties and order is first-seen", func(t *testing.T) {
		merged := Merge(10, base, expansion)
		assert.Equal(t, []int64{1, 2, 3, 4, 5}, productIDs(merged))
	})

	t.Run("output has no duplicates and respects the cap", func(t *testing.T) {
		merged := Merge(4, base, expansion)
		assert.Equal(t, []int64{1, 2, 3, 4}, productIDs(merged))

		seen := make(map[int64]bool)
		for _, p := range merged {
			assert.False(t, seen[p.ID])
			seen[p.ID] = true
		}
	})

	t.Run("missing expansion list is fine", func(t *testing.T) {
		merged := Merge(10, base, nil)
		assert.Equal(t, []int64{1, 2, 3}, productIDs(merged))
	})
}
