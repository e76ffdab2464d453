package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vault93/storefront/internal/domain"
)

// CartRepository implements domain.CartRepository using SQLite.
// Save replaces the whole cart for a scope key so the stored order
// always mirrors the in-memory list.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new SQLite-backed CartRepository.
func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{db: db.SqlDB}
}

func (r *CartRepository) Load(ctx context.Context, scopeKey string) ([]domain.CartItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, brand, name, price, image, quantity
		 FROM cart_items WHERE scope_key = ? ORDER BY position`, scopeKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.ProductID, &it.Brand, &it.Name, &it.Price, &it.Image, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CartRepository) Save(ctx context.Context, scopeKey string, items []domain.CartItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE scope_key = ?`, scopeKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	for i, it := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cart_items (scope_key, product_id, brand, name, price, image, quantity, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			scopeKey, it.ProductID, it.Brand, it.Name, it.Price, it.Image, it.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}

	return tx.Commit()
}
