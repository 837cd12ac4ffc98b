package models

import "time"

// Interaction types recorded in the product_interactions log.
const (
	InteractionView     = "view"
	InteractionSearch   = "search"
	InteractionPurchase = "purchase"
	InteractionLike     = "like"
	InteractionDislike  = "dislike"
)

// ProductInteraction is an append-only event. SearchQuery is set only for
// search interactions; UserID is nil for anonymous traffic.
type ProductInteraction struct {
	ID          int64     `json:"id" db:"id"`
	UserID      *int64    `json:"user_id,omitempty" db:"user_id"`
	ProductID   int64     `json:"product_id" db:"product_id"`
	Type        string    `json:"type" db:"type" validate:"required,oneof=view search purchase like dislike"`
	SearchQuery *string   `json:"search_query,omitempty" db:"search_query"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type FeedbackRequest struct {
	Type string `json:"type" validate:"required,oneof=like dislike"`
}
