package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/repository/sqlite"
)

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{FirstName: "Test", LastName: "User", Email: email, PasswordHash: "h"}
	if err := sqlite.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func TestSessionRepository_GetWithoutSession(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewSessionRepository(db)

	_, err := repo.Get(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_ReplaceKeepsSingleSession(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewSessionRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	err := repo.Replace(ctx, &domain.Session{
		UserID: alice.ID, FirstName: "Alice", LastName: "A",
		Email: "alice@example.com", CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Replace alice: %v", err)
	}

	// A second login replaces the first session rather than adding one.
	err = repo.Replace(ctx, &domain.Session{
		UserID: bob.ID, FirstName: "Bob", LastName: "B",
		Email: "bob@example.com", RememberMe: true, CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Replace bob: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Email != "bob@example.com" {
		t.Fatalf("expected bob's session, got %s", got.Email)
	}
	if !got.RememberMe {
		t.Fatal("expected RememberMe to persist")
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewSessionRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "gone@example.com")
	err := repo.Replace(ctx, &domain.Session{
		UserID: user.ID, FirstName: "Gone", LastName: "User",
		Email: "gone@example.com", CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op.
	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}
