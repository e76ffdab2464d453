package domain

import (
	"context"
	"time"
)

// User is a registered account in the local user registry.
// Accounts are append-only: there are no edit or delete flows.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	RegisteredAt time.Time
}

// UserRepository defines persistence operations for the user registry.
// Email uniqueness is enforced at create time with a case-sensitive
// exact match.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
