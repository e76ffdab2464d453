package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/vault93/storefront/internal/domain"
)

// CartBadge renders the header cart counter. It keeps its element ID
// so the SSE stream can swap it in place.
func CartBadge(count int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "badge"
		if count == 0 {
			class = "badge badge-empty"
		}
		_, err := fmt.Fprintf(w, `<span id="cart-badge" class="%s">%d</span>`, class, count)
		return err
	})
}

// WishlistBadge renders the header wishlist counter.
func WishlistBadge(count int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "badge"
		if count == 0 {
			class = "badge badge-empty"
		}
		_, err := fmt.Fprintf(w, `<span id="wishlist-badge" class="%s">%d</span>`, class, count)
		return err
	})
}

// CartDropdown renders the mini-cart panel with line items, quantity
// controls, and the checkout button.
func CartDropdown(items []domain.CartItem, total float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="cart-dropdown" class="cart-dropdown">`); err != nil {
			return err
		}
		if len(items) == 0 {
			_, err := io.WriteString(w, `<p class="cart-empty">Your cart is empty.</p></div>`)
			return err
		}
		for _, item := range items {
			if _, err := fmt.Fprintf(w, `<div class="cart-item">
<span class="cart-item-image">%s</span>
<div class="cart-item-info">
<span class="cart-item-brand">%s</span>
<span class="cart-item-name">%s</span>
<span class="cart-item-price">%s</span>
</div>
<div class="cart-item-qty">
<button data-on-click="@post('/cart/items/%s/quantity?q=%d')">-</button>
<span>%d</span>
<button data-on-click="@post('/cart/items/%s/quantity?q=%d')">+</button>
</div>
<button class="cart-item-remove" data-on-click="@delete('/cart/items/%s')">&times;</button>
</div>
`,
				esc(item.Image), esc(item.Brand), esc(item.Name), money(item.Price),
				esc(item.ProductID), item.Quantity-1, item.Quantity,
				esc(item.ProductID), item.Quantity+1,
				esc(item.ProductID)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<div class="cart-footer">
<span class="cart-total">Total: %s</span>
<button class="checkout" data-on-click="@post('/cart/checkout')">Checkout</button>
</div>
</div>`, money(total))
		return err
	})
}
