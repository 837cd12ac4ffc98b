package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/internal/config"
	"github.com/vendhub/storefront/internal/engine"
	"github.com/vendhub/storefront/pkg/models"
)

// RecommendationService fetches the records each request needs and runs the
// scoring engine over them. It holds no state of its own; all reads are
// idempotent and safe to run concurrently.
type RecommendationService struct {
	catalog      *CatalogService
	interactions *InteractionService
	preferences  *PreferenceService
	cache        *redis.Client // warm tier; nil disables caching
	config       *config.RecommendationConfig
	logger       *logrus.Logger
	location     *time.Location
}

func NewRecommendationService(
	catalog *CatalogService,
	interactions *InteractionService,
	preferences *PreferenceService,
	cache *redis.Client,
	cfg *config.RecommendationConfig,
	logger *logrus.Logger,
) *RecommendationService {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.WithError(err).WithField("time_zone", cfg.TimeZone).
			Warn("Unknown reference time zone, falling back to UTC")
		location = time.UTC
	}

	return &RecommendationService{
		catalog:      catalog,
		interactions: interactions,
		preferences:  preferences,
		cache:        cache,
		config:       cfg,
		logger:       logger,
		location:     location,
	}
}

// Recommendations blends price affinity, category preference, co-occurrence
// popularity, and purchase history into one ranked list. A nil userID means
// anonymous: no price band, no preference filter, no purchase expansion, but
// still the popularity-ranked base list.
func (s *RecommendationService) Recommendations(ctx context.Context, userID *int64) (*models.RecommendationResponse, error) {
	catalog, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	var (
		band         *models.PriceRange
		preferred    []string
		interactions []models.ProductInteraction
	)
	if userID != nil {
		interactions, err = s.interactions.UserInteractions(ctx, *userID)
		if err != nil {
			return nil, err
		}
		band = engine.PriceBand(interactions, catalog)

		preferred, err = s.preferences.PreferredCategories(ctx, *userID)
		if err != nil {
			return nil, err
		}
	}

	base := engine.RankByCategoryWeight(catalog, band, preferred, s.config.ResultLimit)

	var expansion []models.Product
	if userID != nil {
		expansion = engine.ExpandPurchases(catalog, interactions, s.config.ExpansionLimit)
	}

	recommendations := engine.Merge(s.config.ResultLimit, base, expansion)
	if recommendations == nil {
		recommendations = []models.Product{}
	}

	return &models.RecommendationResponse{
		Recommendations: recommendations,
		PriceRange:      band,
	}, nil
}

// SimilarProducts returns products sharing the seed's category, most viewed
// first. Fails with ErrNotFound when the seed does not exist.
func (s *RecommendationService) SimilarProducts(ctx context.Context, productID int64) ([]models.Product, error) {
	seed, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("similar:%d", productID)
	if cached, ok := s.cachedProducts(ctx, cacheKey); ok {
		return cached, nil
	}

	catalog, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	similar := engine.SimilarByCategory(catalog, *seed, s.config.SimilarLimit)
	if similar == nil {
		similar = []models.Product{}
	}

	s.storeProducts(ctx, cacheKey, similar, s.config.CacheTTL)
	return similar, nil
}

// TrendingProducts ranks products by view interactions inside the requested
// calendar window. Unrecognized time frames resolve to week, and the
// resolved frame is echoed back to the caller.
func (s *RecommendationService) TrendingProducts(ctx context.Context, timeFrame string) (*models.TrendingResponse, error) {
	frame := engine.ResolveTimeFrame(timeFrame)

	cacheKey := "trending:" + frame
	if cached, ok := s.cachedProducts(ctx, cacheKey); ok {
		return &models.TrendingResponse{TrendingProducts: cached, TimeFrame: frame}, nil
	}

	start := engine.WindowStart(frame, time.Now(), s.location)
	views, err := s.interactions.ViewsSince(ctx, start)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	trending := engine.Trending(catalog, views, start, s.config.ResultLimit)
	if trending == nil {
		trending = []models.Product{}
	}

	s.storeProducts(ctx, cacheKey, trending, s.config.TrendingCacheTTL)

	return &models.TrendingResponse{
		TrendingProducts: trending,
		TimeFrame:        frame,
	}, nil
}

// SearchBasedRecommendations matches the user's recent search terms against
// the catalog, most recent search first.
func (s *RecommendationService) SearchBasedRecommendations(ctx context.Context, userID int64) ([]models.Product, error) {
	terms, err := s.interactions.RecentSearchTerms(ctx, userID, s.config.RecentSearches)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	matched := engine.MatchSearches(catalog, terms, s.config.MatchesPerSearch)
	if matched == nil {
		matched = []models.Product{}
	}
	return matched, nil
}

func (s *RecommendationService) cachedProducts(ctx context.Context, key string) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to decode cached products")
		return nil, false
	}

	s.logger.WithField("key", key).Debug("Recommendation cache hit")
	return products, true
}

func (s *RecommendationService) storeProducts(ctx context.Context, key string, products []models.Product, ttl time.Duration) {
	if s.cache == nil || ttl <= 0 {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl).Err(); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to cache products")
	}
}
