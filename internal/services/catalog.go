package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/vendhub/storefront/pkg/models"
)

// DatabaseQuerier is the slice of pgxpool.Pool the services need; pgxmock
// satisfies it in tests.
type DatabaseQuerier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// CatalogService reads the product catalog. Products are owned by catalog
// management; the recommendation layer never writes them.
type CatalogService struct {
	db     DatabaseQuerier
	logger *logrus.Logger
}

func NewCatalogService(db DatabaseQuerier, logger *logrus.Logger) *CatalogService {
	return &CatalogService{db: db, logger: logger}
}

func (s *CatalogService) Product(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, name, description, price, category, views, image
		FROM products
		WHERE id = $1`

	var p models.Product
	err := s.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Views, &p.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query product %d: %w", id, err)
	}

	return &p, nil
}

// Products returns the full catalog; the scoring engine works on the fetched
// set rather than pushing its filters into SQL.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, category, views, image
		FROM products
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Views, &p.Image); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
