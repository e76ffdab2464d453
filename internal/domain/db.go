package domain

import "context"

// Database defines lifecycle operations for the local store backing the
// cart, wishlist, session, and user registry. The implementation owns
// its own migration files and strategy.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
