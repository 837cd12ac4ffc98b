package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendhub/storefront/internal/config"
	"github.com/vendhub/storefront/pkg/models"
)

func testRecommendationConfig() *config.RecommendationConfig {
	return &config.RecommendationConfig{
		ResultLimit:      10,
		ExpansionLimit:   5,
		SimilarLimit:     5,
		RecentSearches:   5,
		MatchesPerSearch: 3,
		TimeZone:         "UTC",
	}
}

func setupRecommendationService(t *testing.T) (pgxmock.PgxPoolIface, *RecommendationService) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	logger := testLogger()
	catalog := NewCatalogService(mockDB, logger)
	interactions := NewInteractionService(mockDB, catalog, nil, logger)
	preferences := NewPreferenceService(mockDB, logger)

	service := NewRecommendationService(catalog, interactions, preferences, nil, testRecommendationConfig(), logger)
	return mockDB, service
}

func catalogRows() *pgxmock.Rows {
	return pgxmock.NewRows(productColumns()).
		AddRow(int64(1), "iPhone 13", "Latest Apple smartphone", 999.99, "electronics", int64(150), "iphone13.jpg").
		AddRow(int64(2), "Galaxy S21", "Samsung flagship phone", 899.99, "electronics", int64(120), "galaxys21.jpg").
		AddRow(int64(3), "Nike Air Max", "Comfortable running shoes", 129.99, "clothing", int64(80), "airmax.jpg").
		AddRow(int64(4), "Harry Potter", "Fantasy novel box set", 89.99, "books", int64(200), "hp.jpg").
		AddRow(int64(5), "MacBook Pro", "Apple laptop for professionals", 1999.99, "electronics", int64(180), "macbook.jpg")
}

func interactionColumns() []string {
	return []string{"id", "user_id", "product_id", "type", "search_query", "created_at"}
}

func recommendedIDs(products []models.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRecommendationService_Recommendations(t *testing.T) {
	t.Run("known user gets price band and preference filter", func(t *testing.T) {
		mockDB, service := setupRecommendationService(t)

		userID := int64(42)

		mockDB.ExpectQuery("SELECT id, name, description").
			WillReturnRows(catalogRows())

		// Views of the two phones put the price band at [899.99, 999.99].
		now := time.Now()
		mockDB.ExpectQuery("SELECT id, user_id, product_id").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(interactionColumns()).
				AddRow(int64(1), &userID, int64(1), models.InteractionView, (*string)(nil), now.Add(-time.Hour)).
				AddRow(int64(2), &userID, int64(2), models.InteractionView, (*string)(nil), now.Add(-2*time.Hour)))

		mockDB.ExpectQuery("SELECT preferred_categories").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"preferred_categories"}).
				AddRow([]byte(`["electronics","books"]`)))

		result, err := service.Recommendations(context.Background(), &userID)
		require.NoError(t, err)

		// Harry Potter (89.99) and the MacBook (1999.99) fall outside the
		// band; Nike is filtered by category.
		assert.Equal(t, []int64{1, 2}, recommendedIDs(result.Recommendations))
		require.NotNil(t, result.PriceRange)
		assert.InDelta(t, 899.99, result.PriceRange.Min, 0.001)
		assert.InDelta(t, 999.99, result.PriceRange.Max, 0.001)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("anonymous user gets the popularity baseline", func(t *testing.T) {
		mockDB, service := setupRecommendationService(t)

		mockDB.ExpectQuery("SELECT id, name, description").
			WillReturnRows(catalogRows())

		result, err := service.Recommendations(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, []int64{5, 1, 2, 4, 3}, recommendedIDs(result.Recommendations))
		assert.Nil(t, result.PriceRange)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("purchase history expands the base list", func(t *testing.T) {
		mockDB, service := setupRecommendationService(t)

		userID := int64(42)

		mockDB.ExpectQuery("SELECT id, name, description").
			WillReturnRows(catalogRows())

		// A purchase alone sets the band around its price, then pulls in the
		// rest of its category.
		now := time.Now()
		mockDB.ExpectQuery("SELECT id, user_id, product_id").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(interactionColumns()).
				AddRow(int64(3), &userID, int64(4), models.InteractionPurchase, (*string)(nil), now.Add(-time.Hour)))

		mockDB.ExpectQuery("SELECT preferred_categories").
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		result, err := service.Recommendations(context.Background(), &userID)
		require.NoError(t, err)

		// Band collapses to [89.99, 89.99]: only Harry Potter survives the
		// base list, and it was purchased, so nothing else from books exists
		// to expand with.
		assert.Equal(t, []int64{4}, recommendedIDs(result.Recommendations))

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRecommendationService_SimilarProducts(t *testing.T) {
	mockDB, service := setupRecommendationService(t)

	mockDB.ExpectQuery("SELECT id, name, description").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(productColumns()).
			AddRow(int64(1), "iPhone 13", "Latest Apple smartphone", 999.99, "electronics", int64(150), "iphone13.jpg"))

	mockDB.ExpectQuery("SELECT id, name, description").
		WillReturnRows(catalogRows())

	similar, err := service.SimilarProducts(context.Background(), 1)
	require.NoError(t, err)

	// Same category minus the seed, most viewed first.
	assert.Equal(t, []int64{5, 2}, recommendedIDs(similar))

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRecommendationService_TrendingProducts(t *testing.T) {
	mockDB, service := setupRecommendationService(t)

	userID := int64(7)
	now := time.Now()

	mockDB.ExpectQuery("SELECT id, user_id, product_id").
		WithArgs(models.InteractionView, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(interactionColumns()).
			AddRow(int64(1), &userID, int64(4), models.InteractionView, (*string)(nil), now).
			AddRow(int64(2), (*int64)(nil), int64(4), models.InteractionView, (*string)(nil), now).
			AddRow(int64(3), &userID, int64(3), models.InteractionView, (*string)(nil), now))

	mockDB.ExpectQuery("SELECT id, name, description").
		WillReturnRows(catalogRows())

	result, err := service.TrendingProducts(context.Background(), "week")
	require.NoError(t, err)

	assert.Equal(t, "week", result.TimeFrame)
	assert.Equal(t, []int64{4, 3}, recommendedIDs(result.TrendingProducts))

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRecommendationService_TrendingProducts_UnknownFrame(t *testing.T) {
	mockDB, service := setupRecommendationService(t)

	mockDB.ExpectQuery("SELECT id, user_id, product_id").
		WithArgs(models.InteractionView, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(interactionColumns()))

	mockDB.ExpectQuery("SELECT id, name, description").
		WillReturnRows(catalogRows())

	result, err := service.TrendingProducts(context.Background(), "decade")
	require.NoError(t, err)

	assert.Equal(t, "week", result.TimeFrame)
	assert.Empty(t, result.TrendingProducts)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRecommendationService_SearchBasedRecommendations(t *testing.T) {
	mockDB, service := setupRecommendationService(t)

	mockDB.ExpectQuery("SELECT search_query").
		WithArgs(int64(42), models.InteractionSearch, 5).
		WillReturnRows(pgxmock.NewRows([]string{"search_query"}).
			AddRow("phone"))

	mockDB.ExpectQuery("SELECT id, name, description").
		WillReturnRows(catalogRows())

	matched, err := service.SearchBasedRecommendations(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, recommendedIDs(matched))

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
