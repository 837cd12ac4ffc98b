package models

// Product is a catalog row. The recommendation layer treats products as
// read-only; catalog management mutates them elsewhere.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Category    string  `json:"category" db:"category"`
	Views       int64   `json:"views" db:"views"`
	Image       string  `json:"image,omitempty" db:"image"`
}
