package sqlite_test

import (
	"context"
	"testing"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/repository/sqlite"
)

func TestCartRepository_SaveAndLoad(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCartRepository(db)
	ctx := context.Background()

	items := []domain.CartItem{
		{ProductID: "dc-001", Brand: "Hot Wheels", Name: "Skyline GT-R", Price: 12.50, Image: "🏎️", Quantity: 2},
		{ProductID: "dc-002", Brand: "Tomica", Name: "Supra", Price: 8.00, Image: "/img/supra.png", Quantity: 1},
	}

	if err := repo.Save(ctx, "", items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded))
	}
	// Order must survive the round trip.
	if loaded[0].ProductID != "dc-001" || loaded[1].ProductID != "dc-002" {
		t.Fatalf("expected insertion order preserved, got %v, %v", loaded[0].ProductID, loaded[1].ProductID)
	}
	if loaded[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", loaded[0].Quantity)
	}
}

func TestCartRepository_SaveReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCartRepository(db)
	ctx := context.Background()

	first := []domain.CartItem{{ProductID: "dc-001", Brand: "B", Name: "N", Price: 1, Image: "i", Quantity: 1}}
	if err := repo.Save(ctx, "", first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	if err := repo.Save(ctx, "", nil); err != nil {
		t.Fatalf("Save empty: %v", err)
	}

	loaded, err := repo.Load(ctx, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty cart after replace, got %d items", len(loaded))
	}
}

func TestCartRepository_ScopeKeysAreIsolated(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCartRepository(db)
	ctx := context.Background()

	device := []domain.CartItem{{ProductID: "dc-001", Brand: "B", Name: "Device Item", Price: 1, Image: "i", Quantity: 1}}
	user := []domain.CartItem{{ProductID: "dc-002", Brand: "B", Name: "User Item", Price: 2, Image: "i", Quantity: 3}}

	if err := repo.Save(ctx, "", device); err != nil {
		t.Fatalf("Save device cart: %v", err)
	}
	if err := repo.Save(ctx, "user@example.com", user); err != nil {
		t.Fatalf("Save user cart: %v", err)
	}

	loaded, err := repo.Load(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("Load user cart: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ProductID != "dc-002" {
		t.Fatalf("expected only the user-scoped item, got %v", loaded)
	}
}
