package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/service"
)

func TestCatalogService_SeedCatalog(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Products())
	ctx := context.Background()

	if err := catalog.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	products, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("expected a seeded catalog")
	}

	// Seeding again must not duplicate anything.
	if err := catalog.SeedCatalog(ctx); err != nil {
		t.Fatalf("second SeedCatalog: %v", err)
	}
	again, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(again) != len(products) {
		t.Fatalf("expected %d products after reseed, got %d", len(products), len(again))
	}
}

func TestCatalogService_GetByID(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Products())
	ctx := context.Background()

	if err := catalog.SeedCatalog(ctx); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}

	p, err := catalog.GetByID(ctx, "dc-001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Brand == "" || p.Name == "" || p.Price <= 0 {
		t.Fatalf("expected a fully populated product, got %+v", p)
	}

	if _, err := catalog.GetByID(ctx, "dc-404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_CartItemAndWishlistEntry(t *testing.T) {
	catalog := service.NewCatalogService(nil)
	p := &domain.Product{ID: "dc-001", Brand: "Kyosho", Name: "Ferrari F40", Price: 42.00, Image: "🏁"}

	item := catalog.CartItem(p)
	if item.ProductID != p.ID || item.Price != p.Price || item.Quantity != 0 {
		t.Fatalf("unexpected cart item %+v", item)
	}

	entry := catalog.WishlistEntry(p)
	if entry.ProductID != p.ID || entry.Brand != p.Brand {
		t.Fatalf("unexpected wishlist entry %+v", entry)
	}
}
