package services

import (
	"context"

	"github.com/vendhub/storefront/pkg/models"
)

// RecommendationServiceInterface is what the recommendation handlers depend
// on; tests substitute a mock.
type RecommendationServiceInterface interface {
	Recommendations(ctx context.Context, userID *int64) (*models.RecommendationResponse, error)
	SimilarProducts(ctx context.Context, productID int64) ([]models.Product, error)
	TrendingProducts(ctx context.Context, timeFrame string) (*models.TrendingResponse, error)
	SearchBasedRecommendations(ctx context.Context, userID int64) ([]models.Product, error)
}

// PreferenceServiceInterface covers the preference upsert used by handlers.
type PreferenceServiceInterface interface {
	Update(ctx context.Context, userID int64, categories []string) error
}

// InteractionWriterInterface covers the feedback append used by handlers.
type InteractionWriterInterface interface {
	RecordFeedback(ctx context.Context, userID, productID int64, feedbackType string) (*models.ProductInteraction, error)
}
