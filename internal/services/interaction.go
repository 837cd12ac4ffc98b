package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/pkg/models"
)

// InteractionPublisher pushes appended interactions onto the event stream
// for downstream consumers. Publishing is best effort; the relational append
// is the source of truth.
type InteractionPublisher interface {
	PublishInteraction(interaction *models.ProductInteraction) error
}

// InteractionService owns the product_interactions log: the only write the
// recommendation layer performs besides preference upserts. Rows are only
// ever appended.
type InteractionService struct {
	db        DatabaseQuerier
	catalog   *CatalogService
	publisher InteractionPublisher
	logger    *logrus.Logger
}

func NewInteractionService(db DatabaseQuerier, catalog *CatalogService, publisher InteractionPublisher, logger *logrus.Logger) *InteractionService {
	return &InteractionService{
		db:        db,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// RecordFeedback appends a like or dislike interaction. Prior feedback for
// the same product is never overwritten.
func (s *InteractionService) RecordFeedback(ctx context.Context, userID, productID int64, feedbackType string) (*models.ProductInteraction, error) {
	if feedbackType != models.InteractionLike && feedbackType != models.InteractionDislike {
		return nil, fmt.Errorf("feedback type %q: %w", feedbackType, ErrValidation)
	}

	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return nil, err
	}

	interaction := &models.ProductInteraction{
		UserID:    &userID,
		ProductID: productID,
		Type:      feedbackType,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO product_interactions (user_id, product_id, type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.db.QueryRow(ctx, query,
		interaction.UserID, interaction.ProductID, interaction.Type, interaction.CreatedAt,
	).Scan(&interaction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	s.publish(interaction)

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
		"type":       feedbackType,
	}).Info("Recorded feedback interaction")

	return interaction, nil
}

// UserInteractions returns a user's full interaction history, newest first.
func (s *InteractionService) UserInteractions(ctx context.Context, userID int64) ([]models.ProductInteraction, error) {
	query := `
		SELECT id, user_id, product_id, type, search_query, created_at
		FROM product_interactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// ViewsSince returns all view interactions recorded at or after since,
// across all users. Feeds the trending aggregator.
func (s *InteractionService) ViewsSince(ctx context.Context, since time.Time) ([]models.ProductInteraction, error) {
	query := `
		SELECT id, user_id, product_id, type, search_query, created_at
		FROM product_interactions
		WHERE type = $1 AND created_at >= $2`

	rows, err := s.db.Query(ctx, query, models.InteractionView, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query view interactions: %w", err)
	}
	defer rows.Close()

	return scanInteractions(rows)
}

// RecentSearchTerms returns the user's most recent search queries, newest
// first, capped at limit.
func (s *InteractionService) RecentSearchTerms(ctx context.Context, userID int64, limit int) ([]string, error) {
	query := `
		SELECT search_query
		FROM product_interactions
		WHERE user_id = $1 AND type = $2 AND search_query IS NOT NULL
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := s.db.Query(ctx, query, userID, models.InteractionSearch, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("failed to scan search term: %w", err)
		}
		terms = append(terms, term)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}

	return terms, nil
}

func (s *InteractionService) publish(interaction *models.ProductInteraction) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishInteraction(interaction); err != nil {
		s.logger.WithError(err).Warn("Failed to publish interaction event")
	}
}

func scanInteractions(rows pgx.Rows) ([]models.ProductInteraction, error) {
	var interactions []models.ProductInteraction
	for rows.Next() {
		var in models.ProductInteraction
		if err := rows.Scan(&in.ID, &in.UserID, &in.ProductID, &in.Type, &in.SearchQuery, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interactions: %w", err)
	}
	return interactions, nil
}
