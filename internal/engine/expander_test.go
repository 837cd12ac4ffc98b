package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vendhub/storefront/pkg/models"
)

func TestExpandPurchases(t *testing.T) {
	catalog := catalogFixture()
	now := time.Now()

	t.Run("proposes purchased categories ordered by views", func(t *testing.T) {
		interactions := []models.ProductInteraction{
			interaction(7, 2, models.InteractionPurchase, now),
		}

		expanded := ExpandPurchases(catalog, interactions, 5)
		assert.Equal(t, []int64{5, 1}, productIDs(expanded))
	})

	t.Run("never repeats a purchased product", func(t *testing.T) {
		interactions := []models.ProductInteraction{
			interaction(7, 1, models.InteractionPurchase, now),
			interaction(7, 2, models.InteractionPurchase, now),
			interaction(7, 5, models.InteractionPurchase, now),
		}

		expanded := ExpandPurchases(catalog, interactions, 5)
		assert.Empty(t, expanded)
	})

	t.Run("views and likes do not seed the expansion", func(t *testing.T) {
		interactions := []models.ProductInteraction{
			interaction(7, 1, models.InteractionView, now),
			interaction(7, 4, models.InteractionLike, now),
		}

		assert.Empty(t, ExpandPurchases(catalog, interactions, 5))
	})

	t.Run("result is capped", func(t *testing.T) {
		interactions := []models.ProductInteraction{
			interaction(7, 2, models.InteractionPurchase, now),
		}

		expanded := ExpandPurchases(catalog, interactions, 1)
		assert.Equal(t, []int64{5}, productIDs(expanded))
	})
}
