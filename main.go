package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/handler"
	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/repository/sqlite"
	"github.com/vault93/storefront/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	port := envOrDefault("PORT", "8080")
	dbPath := envOrDefault("DATABASE_PATH", "storefront.db")
	checkoutURL := envOrDefault("CHECKOUT_URL", "https://checkout.vault93.example/cart")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	// Default to secure cookies; disable only for local development.
	cookieSecure := os.Getenv("COOKIE_SECURE") != "false"

	bcryptCost := 12
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	// The cart is shared per device by default; user scope keys it by
	// the signed-in account instead.
	cartScope := domain.CartScopeDevice
	switch os.Getenv("CART_SCOPE") {
	case "", "device":
	case "user":
		cartScope = domain.CartScopeUser
	default:
		slog.Error("CART_SCOPE must be device or user", "value", os.Getenv("CART_SCOPE"))
		os.Exit(1)
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	catalogService := service.NewCatalogService(db.Products())
	if err := catalogService.SeedCatalog(ctx); err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog seeded")

	authService := service.NewAuthService(ctx, db.Users(), db.Sessions(), jwtSecret, bcryptCost)
	cartService := service.NewCartService(ctx, db.Carts(), authService, cartScope, checkoutURL)
	wishlistService := service.NewWishlistService(ctx, db.Wishlists(), authService, cartService)
	center := notify.NewCenter()

	// The wishlist and a user-scoped cart follow the session.
	authService.SubscribeSession(wishlistService.HandleSessionChange)
	authService.SubscribeSession(cartService.HandleSessionChange)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:         authService,
		Cart:         cartService,
		Wishlist:     wishlistService,
		Catalog:      catalogService,
		Center:       center,
		CookieSecure: cookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	shutdownTrigger, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdownTrigger.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
