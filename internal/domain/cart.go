package domain

import "context"

// CartScope decides whether the cart is shared across sessions on this
// device or keyed to the logged-in user like the wishlist.
type CartScope string

const (
	// CartScopeDevice keeps one cart for the whole device, available to
	// guests (guest checkout flow).
	CartScopeDevice CartScope = "device"
	// CartScopeUser keys the cart by user email; it is empty while
	// logged out.
	CartScopeUser CartScope = "user"
)

// CartItem is a line item: a product reference plus a quantity.
// Quantity is always at least 1; items are unique by ProductID within
// one cart.
type CartItem struct {
	ProductID string
	Brand     string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// CartRepository persists the ordered line items of one cart.
// The scope key is "" for the device cart or a user email for
// user-scoped carts.
type CartRepository interface {
	Load(ctx context.Context, scopeKey string) ([]CartItem, error)
	Save(ctx context.Context, scopeKey string, items []CartItem) error
}
