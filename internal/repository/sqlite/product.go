package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vault93/storefront/internal/domain"
)

// ProductRepository implements domain.ProductRepository using SQLite.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new SQLite-backed ProductRepository.
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db.SqlDB}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, brand, name, price, image FROM products ORDER BY brand, name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Brand, &p.Name, &p.Price, &p.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, brand, name, price, image FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Brand, &p.Name, &p.Price, &p.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query product by id: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, brand, name, price, image) VALUES (?, ?, ?, ?, ?)`,
		product.ID, product.Brand, product.Name, product.Price, product.Image,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}
