package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// PreferenceService stores each user's explicit category preferences: one
// row per user, replaced wholesale on update.
type PreferenceService struct {
	db     DatabaseQuerier
	logger *logrus.Logger
}

func NewPreferenceService(db DatabaseQuerier, logger *logrus.Logger) *PreferenceService {
	return &PreferenceService{db: db, logger: logger}
}

// Update upserts the preference record keyed by user.
func (s *PreferenceService) Update(ctx context.Context, userID int64, categories []string) error {
	payload, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	query := `
		INSERT INTO user_preferences (user_id, preferred_categories, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET preferred_categories = EXCLUDED.preferred_categories, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.Exec(ctx, query, userID, payload, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"categories": categories,
	}).Info("Updated user preferences")

	return nil
}

// PreferredCategories returns the user's stored categories. A user without
// a preference record gets an empty set, which downstream filters treat as
// "no constraint".
func (s *PreferenceService) PreferredCategories(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT preferred_categories
		FROM user_preferences
		WHERE user_id = $1`

	var payload []byte
	err := s.db.QueryRow(ctx, query, userID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}

	if len(payload) == 0 {
		return nil, nil
	}

	var categories []string
	if err := json.Unmarshal(payload, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}
