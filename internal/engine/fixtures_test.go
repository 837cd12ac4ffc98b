package engine

import (
	"time"

	"github.com/vendhub/storefront/pkg/models"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "iPhone 13", Description: "Latest iPhone model with amazing features", Price: 999.99, Category: "electronics", Views: 150},
		{ID: 2, Name: "Samsung Galaxy S21", Description: "Powerful Android smartphone", Price: 899.99, Category: "electronics", Views: 120},
		{ID: 3, Name: "Nike Air Max", Description: "Comfortable running shoes", Price: 129.99, Category: "clothing", Views: 80},
		{ID: 4, Name: "Harry Potter Complete Set", Description: "All 7 books in the series", Price: 89.99, Category: "books", Views: 200},
		{ID: 5, Name: "MacBook Pro", Description: "16-inch, M1 Pro chip", Price: 1999.99, Category: "electronics", Views: 180},
	}
}

func interaction(userID, productID int64, kind string, at time.Time) models.ProductInteraction {
	return models.ProductInteraction{
		UserID:    &userID,
		ProductID: productID,
		Type:      kind,
		CreatedAt: at,
	}
}

func productIDs(products []models.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
