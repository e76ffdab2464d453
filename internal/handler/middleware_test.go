package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/handler"
	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/repository/sqlite"
	"github.com/vault93/storefront/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

// newTestServices builds the full service graph over a scratch
// database, with the session wiring the server performs at startup.
// Notification timers are effectively frozen so tests can inspect
// toasts and prompts at leisure.
func newTestServices(t *testing.T) handler.Services {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	catalog := service.NewCatalogService(db.Products())
	if err := catalog.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	auth := service.NewAuthService(ctx, db.Users(), db.Sessions(), testJWTSecret, 4)
	cart := service.NewCartService(ctx, db.Carts(), auth, domain.CartScopeDevice, "https://checkout.example.com")
	wishlist := service.NewWishlistService(ctx, db.Wishlists(), auth, cart)
	auth.SubscribeSession(wishlist.HandleSessionChange)

	center := notify.NewCenterWithTimings(time.Hour, time.Hour, time.Hour)

	return handler.Services{
		Auth:     auth,
		Cart:     cart,
		Wishlist: wishlist,
		Catalog:  catalog,
		Center:   center,
	}
}

func registerTestUser(t *testing.T, auth *service.AuthService, email string) string {
	t.Helper()
	_, token, err := auth.Register(context.Background(), "Test", "User", email, "password123", "password123")
	if err != nil {
		t.Fatalf("Register %s: %v", email, err)
	}
	return token
}

func TestRequireAuth_ValidJWT(t *testing.T) {
	s := newTestServices(t)
	token := registerTestUser(t, s.Auth, "valid@example.com")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := handler.UserFromContext(r.Context())
		if user != nil {
			gotUser = user.Email
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(s.Auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "valid@example.com" {
		t.Fatalf("expected user valid@example.com, got %q", gotUser)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	s := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(s.Auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	s := newTestServices(t)
	token := registerTestUser(t, s.Auth, "tamper@example.com")
	tampered := token[:len(token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: tampered})
	w := httptest.NewRecorder()

	handler.RequireAuth(s.Auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_TokenAfterLogout(t *testing.T) {
	s := newTestServices(t)
	token := registerTestUser(t, s.Auth, "loggedout@example.com")
	if err := s.Auth.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(s.Auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a token whose session ended, got %d", w.Code)
	}
}

func TestOptionalAuth_WithToken(t *testing.T) {
	s := newTestServices(t)
	token := registerTestUser(t, s.Auth, "opt@example.com")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := handler.UserFromContext(r.Context())
		if user != nil {
			gotUser = user.Email
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(s.Auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "opt@example.com" {
		t.Fatalf("expected user opt@example.com, got %q", gotUser)
	}
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	s := newTestServices(t)

	sawNilUser := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawNilUser = handler.UserFromContext(r.Context()) == nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(s.Auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !sawNilUser {
		t.Fatal("expected nil user in context for unauthenticated request")
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
