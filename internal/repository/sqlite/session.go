package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vault93/storefront/internal/domain"
)

// SessionRepository implements domain.SessionRepository using SQLite.
// The table holds at most one row.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite-backed SessionRepository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db.SqlDB}
}

func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	s := &domain.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, first_name, last_name, email, remember_me, created_at
		 FROM current_session WHERE id = 1`,
	).Scan(&s.UserID, &s.FirstName, &s.LastName, &s.Email, &s.RememberMe, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query current session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) Replace(ctx context.Context, session *domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO current_session (id, user_id, first_name, last_name, email, remember_me, created_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		     user_id = excluded.user_id,
		     first_name = excluded.first_name,
		     last_name = excluded.last_name,
		     email = excluded.email,
		     remember_me = excluded.remember_me,
		     created_at = excluded.created_at`,
		session.UserID, session.FirstName, session.LastName, session.Email,
		session.RememberMe, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM current_session WHERE id = 1`); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
