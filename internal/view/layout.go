// Package view renders the storefront's HTML. Components are templ
// components so handlers can send them whole or patch them into the
// page over SSE.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// money formats a price. All prices on the site go through here so the
// currency renders the same everywhere.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// PageData carries the state every page shell needs.
type PageData struct {
	Title         string
	LoggedIn      bool
	FirstName     string
	CartCount     int
	WishlistCount int
}

// Layout wraps a page body in the site shell: header, nav with the
// cart and wishlist badges, and the containers the SSE stream patches.
func Layout(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s | Vault 93</title>
<link rel="stylesheet" href="/static/style.css">
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body data-on-load="@get('/ui/updates')">
<header class="site-header">
<a href="/" class="logo">VAULT 93</a>
<nav class="site-nav">
<a href="/">Shop</a>
<a href="/wishlist">Wishlist `, esc(data.Title)); err != nil {
			return err
		}
		if err := WishlistBadge(data.WishlistCount).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</a>
<button class="cart-toggle" data-on-click="@get('/cart/dropdown')">Cart `); err != nil {
			return err
		}
		if err := CartBadge(data.CartCount).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</button>
`); err != nil {
			return err
		}
		if err := accountControls(data).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</nav>
</header>
<div id="cart-dropdown" class="cart-dropdown hidden"></div>
<main id="page-body">
`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>
<div id="toast-stack" class="toast-stack"></div>
<div id="prompt-overlay"></div>
<div id="auth-modal"></div>
</body>
</html>
`); err != nil {
			return err
		}
		return nil
	})
}

func accountControls(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.LoggedIn {
			_, err := fmt.Fprintf(w, `<span class="account">Hi, %s</span>
<button data-on-click="@post('/api/auth/logout')">Log Out</button>
`, esc(data.FirstName))
			return err
		}
		_, err := io.WriteString(w, `<button data-on-click="@get('/auth/modal')">Sign In</button>
`)
		return err
	})
}
