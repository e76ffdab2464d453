package domain

import (
	"context"
	"time"
)

// Session is the record for the currently authenticated user.
// Exactly one session may be active at a time; a successful login or
// signup replaces any prior session, and logout destroys it.
type Session struct {
	UserID     int64
	FirstName  string
	LastName   string
	Email      string
	RememberMe bool
	CreatedAt  time.Time
}

// SessionRepository persists the single current-session record.
// Get returns ErrNotFound when no session is active.
type SessionRepository interface {
	Get(ctx context.Context) (*Session, error)
	Replace(ctx context.Context, session *Session) error
	Delete(ctx context.Context) error
}
