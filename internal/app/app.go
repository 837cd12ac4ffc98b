package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/internal/config"
	"github.com/vendhub/storefront/internal/database"
	"github.com/vendhub/storefront/internal/handlers"
	"github.com/vendhub/storefront/internal/middleware"
	"github.com/vendhub/storefront/internal/services"
	"github.com/vendhub/storefront/internal/validation"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	db       *database.Database
	services *services.Services
	handlers *handlers.Handlers
	router   *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	services, err := services.New(cfg, app.logger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = services

	app.handlers = handlers.New(app.logger, services)

	if err := app.setupRouter(); err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.services.MessageBus.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing message bus")
	}

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() error {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	schemaValidator, err := validation.NewSchemaValidator()
	if err != nil {
		return err
	}
	validationMiddleware := middleware.NewValidationMiddleware(schemaValidator)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	// Health check endpoint (no auth required)
	router.GET("/health", a.handlers.Health.Check)

	// Prometheus metrics endpoint (no auth required)
	if a.config.Monitoring.Enabled {
		router.GET(a.config.Monitoring.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(a.services.RateLimit, a.logger))

	recommendations := api.Group("/recommendations")
	{
		recommendations.GET("",
			middleware.OptionalAuth(a.services.Auth, a.logger),
			a.handlers.Recommendation.Get)
		recommendations.GET("/trending", a.handlers.Recommendation.GetTrending)
		recommendations.GET("/similar/:productId", a.handlers.Recommendation.GetSimilar)
		recommendations.GET("/search-based",
			middleware.RequireAuth(a.services.Auth, a.logger),
			a.handlers.Recommendation.GetSearchBased)
		recommendations.POST("/preferences",
			middleware.RequireAuth(a.services.Auth, a.logger),
			validationMiddleware.ValidatePreferenceUpdate(),
			a.handlers.Recommendation.UpdatePreferences)
		recommendations.POST("/:productId/feedback",
			middleware.RequireAuth(a.services.Auth, a.logger),
			validationMiddleware.ValidateFeedback(),
			a.handlers.Recommendation.RecordFeedback)
	}

	a.router = router
	return nil
}
