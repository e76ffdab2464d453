package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vault93/storefront/internal/domain"
)

// CatalogService serves the product catalog.
type CatalogService struct {
	products domain.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products domain.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns the full catalog ordered by brand and name.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// GetByID returns a product by its ID.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// CartItem builds the cart line for a product.
func (s *CatalogService) CartItem(p *domain.Product) domain.CartItem {
	return domain.CartItem{
		ProductID: p.ID,
		Brand:     p.Brand,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}
}

// WishlistEntry builds the wishlist entry for a product.
func (s *CatalogService) WishlistEntry(p *domain.Product) domain.WishlistEntry {
	return domain.WishlistEntry{
		ProductID: p.ID,
		Brand:     p.Brand,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}
}

// SeedCatalog inserts the stock catalog. It is idempotent, existing
// products are skipped by ID.
func (s *CatalogService) SeedCatalog(ctx context.Context) error {
	for _, p := range stockCatalog {
		_, err := s.products.GetByID(ctx, p.ID)
		if err == nil {
			continue // already exists
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check product %s: %w", p.ID, err)
		}
		if err := s.products.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	return nil
}

var stockCatalog = []domain.Product{
	// JDM Legends
	{ID: "dc-001", Brand: "Hot Wheels", Name: "Nissan Skyline GT-R R34", Price: 12.50, Image: "🏎️"},
	{ID: "dc-002", Brand: "Hot Wheels", Name: "Toyota Supra MK4", Price: 11.00, Image: "🚗"},
	{ID: "dc-003", Brand: "Tomica", Name: "Honda NSX Type R", Price: 9.50, Image: "🏁"},
	{ID: "dc-004", Brand: "Tomica", Name: "Mazda RX-7 FD", Price: 8.75, Image: "🚙"},
	{ID: "dc-005", Brand: "Mini GT", Name: "Nissan Silvia S15", Price: 24.00, Image: "🚘"},
	// Euro Classics
	{ID: "dc-006", Brand: "Mini GT", Name: "Porsche 911 GT3 RS", Price: 26.50, Image: "🏎️"},
	{ID: "dc-007", Brand: "Kyosho", Name: "Lamborghini Countach LP400", Price: 38.00, Image: "🚗"},
	{ID: "dc-008", Brand: "Kyosho", Name: "Ferrari F40", Price: 42.00, Image: "🏁"},
	{ID: "dc-009", Brand: "Matchbox", Name: "BMW M3 E30", Price: 7.25, Image: "🚙"},
	// American Muscle
	{ID: "dc-010", Brand: "Hot Wheels", Name: "Dodge Charger R/T 1969", Price: 10.00, Image: "🚘"},
	{ID: "dc-011", Brand: "Matchbox", Name: "Ford Mustang Boss 302", Price: 8.00, Image: "🏎️"},
	{ID: "dc-012", Brand: "Greenlight", Name: "Chevrolet Camaro SS 1967", Price: 15.50, Image: "🚗"},
}
