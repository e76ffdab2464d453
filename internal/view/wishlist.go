package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/vault93/storefront/internal/domain"
)

// WishlistPage renders the wishlist. Logged-out visitors get the
// sign-in invitation instead of a list.
func WishlistPage(entries []domain.WishlistEntry, loggedIn bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="wishlist" class="wishlist">
<h1>My Wishlist</h1>
`); err != nil {
			return err
		}
		if !loggedIn {
			_, err := io.WriteString(w, `<p class="wishlist-empty">Sign in to see your wishlist.</p>
<button data-on-click="@get('/auth/modal')">Sign In</button>
</section>
`)
			return err
		}
		if len(entries) == 0 {
			_, err := io.WriteString(w, `<p class="wishlist-empty">Nothing saved yet. Tap the heart on any model to keep it here.</p>
</section>
`)
			return err
		}
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, `<div class="wishlist-item">
<span class="wishlist-item-image">%s</span>
<div class="wishlist-item-info">
<span class="wishlist-item-brand">%s</span>
<span class="wishlist-item-name">%s</span>
<span class="wishlist-item-price">%s</span>
</div>
<button data-on-click="@post('/wishlist/items/%s/move-to-cart')">Move to Cart</button>
<button class="wishlist-item-remove" data-on-click="@delete('/wishlist/items/%s')">Remove</button>
</div>
`, esc(e.Image), esc(e.Brand), esc(e.Name), money(e.Price), esc(e.ProductID), esc(e.ProductID)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<button class="wishlist-clear" data-on-click="@post('/wishlist/clear')">Clear Wishlist</button>
</section>
`)
		return err
	})
}
