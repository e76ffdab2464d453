package domain

import (
	"context"
	"time"
)

// WishlistEntry is a saved-for-later product reference, scoped to one
// user. Entries are unique by ProductID within a user's list.
type WishlistEntry struct {
	ProductID string
	Brand     string
	Name      string
	Price     float64
	Image     string
	AddedAt   time.Time
}

// WishlistRepository persists per-user wishlists, keyed by the owning
// user's email.
type WishlistRepository interface {
	Load(ctx context.Context, email string) ([]WishlistEntry, error)
	Save(ctx context.Context, email string, entries []WishlistEntry) error
}
