package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSearches(t *testing.T) {
	catalog := catalogFixture()

	t.Run("matches name description and category case-insensitively", func(t *testing.T) {
		matched := MatchSearches(catalog, []string{"PHONE"}, 3)
		assert.Equal(t, []int64{1, 2}, productIDs(matched))
	})

	t.Run("most recent term's matches surface first", func(t *testing.T) {
		matched := MatchSearches(catalog, []string{"book", "phone"}, 3)
		assert.Equal(t, []int64{4, 5, 1, 2}, productIDs(matched))
	})

	t.Run("per-term cap applies before deduplication", func(t *testing.T) {
		// "electronics" spends its quota on products the earlier term
		// already admitted, so the MacBook is dropped even though the
		// final list has room.
		matched := MatchSearches(catalog, []string{"phone", "electronics"}, 2)
		assert.Equal(t, []int64{1, 2}, productIDs(matched))
	})

	t.Run("duplicates across terms keep their first position", func(t *testing.T) {
		matched := MatchSearches(catalog, []string{"phone", "smartphone"}, 3)
		assert.Equal(t, []int64{1, 2}, productIDs(matched))
	})

	t.Run("empty terms are skipped", func(t *testing.T) {
		assert.Empty(t, MatchSearches(catalog, []string{"", "zzzz"}, 3))
	})

	t.Run("no terms yields no matches", func(t *testing.T) {
		assert.Empty(t, MatchSearches(catalog, nil, 3))
	})
}
