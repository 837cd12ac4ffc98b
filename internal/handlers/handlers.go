package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/internal/services"
)

type Handlers struct {
	Health         *HealthHandler
	Recommendation *RecommendationHandler
}

func New(logger *logrus.Logger, services *services.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(logger, services.Health),
		Recommendation: NewRecommendationHandler(
			services.Recommendation,
			services.Preference,
			services.Interaction,
			logger,
		),
	}
}
