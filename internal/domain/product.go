package domain

import "context"

// Product is a catalog entry. Image is either a URL or an emoji
// placeholder used by product pages and the mini-cart.
type Product struct {
	ID    string
	Brand string
	Name  string
	Price float64
	Image string
}

// ProductRepository defines read and seed operations for the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, product *Product) error
}
