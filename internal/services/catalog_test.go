package services

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgx/v5"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // Reduce noise in tests
	return logger
}

func productColumns() []string {
	return []string{"id", "name", "description", "price", "category", "views", "image"}
}

func TestCatalogService_Product(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	service := NewCatalogService(mockDB, testLogger())

	t.Run("existing product", func(t *testing.T) {
		rows := pgxmock.NewRows(productColumns()).
			AddRow(int64(1), "iPhone 13", "Latest Apple smartphone", 999.99, "electronics", int64(150), "iphone13.jpg")

		mockDB.ExpectQuery("SELECT id, name, description").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		product, err := service.Product(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "iPhone 13", product.Name)
		assert.Equal(t, 999.99, product.Price)
	})

	t.Run("missing product maps to ErrNotFound", func(t *testing.T) {
		mockDB.ExpectQuery("SELECT id, name, description").
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		product, err := service.Product(context.Background(), 999)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestCatalogService_Products(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	service := NewCatalogService(mockDB, testLogger())

	rows := pgxmock.NewRows(productColumns()).
		AddRow(int64(1), "iPhone 13", "Latest Apple smartphone", 999.99, "electronics", int64(150), "iphone13.jpg").
		AddRow(int64(3), "Nike Air Max", "Comfortable running shoes", 129.99, "clothing", int64(80), "airmax.jpg")

	mockDB.ExpectQuery("SELECT id, name, description").
		WillReturnRows(rows)

	products, err := service.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "iPhone 13", products[0].Name)
	assert.Equal(t, "clothing", products[1].Category)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
