package services

import (
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/internal/config"
	"github.com/vendhub/storefront/internal/database"
	"github.com/vendhub/storefront/internal/messaging"
)

type Services struct {
	Auth           *AuthService
	Health         *HealthService
	RateLimit      *RateLimitService
	MessageBus     *messaging.MessageBus
	Catalog        *CatalogService
	Interaction    *InteractionService
	Preference     *PreferenceService
	Recommendation *RecommendationService
}

func New(cfg *config.Config, logger *logrus.Logger, db *database.Database) (*Services, error) {
	authService := NewAuthService(cfg, logger)
	healthService := NewHealthService(cfg, logger, db)
	rateLimitService := NewRateLimitService(cfg, logger, db.Redis.Hot)

	messageBus, err := messaging.NewMessageBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	catalogService := NewCatalogService(db.PG, logger)
	interactionService := NewInteractionService(db.PG, catalogService, messageBus, logger)
	preferenceService := NewPreferenceService(db.PG, logger)

	recommendationService := NewRecommendationService(
		catalogService, interactionService, preferenceService,
		db.Redis.Warm, &cfg.Recommendations, logger,
	)

	return &Services{
		Auth:           authService,
		Health:         healthService,
		RateLimit:      rateLimitService,
		MessageBus:     messageBus,
		Catalog:        catalogService,
		Interaction:    interactionService,
		Preference:     preferenceService,
		Recommendation: recommendationService,
	}, nil
}
