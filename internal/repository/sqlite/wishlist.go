package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vault93/storefront/internal/domain"
)

// WishlistRepository implements domain.WishlistRepository using SQLite,
// one list per user email.
type WishlistRepository struct {
	db *sql.DB
}

// NewWishlistRepository creates a new SQLite-backed WishlistRepository.
func NewWishlistRepository(db *DB) *WishlistRepository {
	return &WishlistRepository{db: db.SqlDB}
}

func (r *WishlistRepository) Load(ctx context.Context, email string) ([]domain.WishlistEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, brand, name, price, image, added_at
		 FROM wishlist_items WHERE email = ? ORDER BY position`, email)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(&e.ProductID, &e.Brand, &e.Name, &e.Price, &e.Image, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan wishlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *WishlistRepository) Save(ctx context.Context, email string, entries []domain.WishlistEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wishlist_items WHERE email = ?`, email); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}

	for i, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO wishlist_items (email, product_id, brand, name, price, image, added_at, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			email, e.ProductID, e.Brand, e.Name, e.Price, e.Image, e.AddedAt, i,
		)
		if err != nil {
			return fmt.Errorf("insert wishlist entry: %w", err)
		}
	}

	return tx.Commit()
}
