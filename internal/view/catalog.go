package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/vault93/storefront/internal/domain"
)

// CatalogPage renders the product grid. wishlisted marks which
// products carry a filled wishlist heart.
func CatalogPage(products []domain.Product, wishlisted map[string]bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="catalog">
<h1>Die-Cast Collection</h1>
<div class="product-grid">
`); err != nil {
			return err
		}
		for _, p := range products {
			if err := ProductCard(p, wishlisted[p.ID]).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>
</section>
`)
		return err
	})
}

// ProductCard renders one product tile with its add-to-cart and
// wishlist-toggle controls.
func ProductCard(p domain.Product, wishlisted bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heart := "♡"
		heartClass := "wishlist-heart"
		if wishlisted {
			heart = "♥"
			heartClass = "wishlist-heart active"
		}
		_, err := fmt.Fprintf(w, `<div id="product-%s" class="product-card">
<button class="%s" data-on-click="@post('/wishlist/items/%s/toggle')">%s</button>
<span class="product-image">%s</span>
<span class="product-brand">%s</span>
<span class="product-name">%s</span>
<span class="product-price">%s</span>
<button class="add-to-cart" data-on-click="@post('/cart/items/%s')">Add to Cart</button>
</div>
`, esc(p.ID), heartClass, esc(p.ID), heart, esc(p.Image), esc(p.Brand), esc(p.Name), money(p.Price), esc(p.ID))
		return err
	})
}
