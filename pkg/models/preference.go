package models

import "time"

// UserPreference holds a user's explicit category choices. At most one row
// per user; updates replace the whole category set.
type UserPreference struct {
	UserID              int64     `json:"user_id" db:"user_id"`
	PreferredCategories []string  `json:"preferred_categories" db:"preferred_categories"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

type UpdatePreferencesRequest struct {
	PreferredCategories []string `json:"preferred_categories" validate:"required,min=1,dive,required"`
}
