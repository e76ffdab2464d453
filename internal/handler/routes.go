package handler

import (
	"net/http"

	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/static"
)

// Services bundles everything the routes need.
type Services struct {
	Auth         *service.AuthService
	Cart         *service.CartService
	Wishlist     *service.WishlistService
	Catalog      *service.CatalogService
	Center       *notify.Center
	CookieSecure bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, s Services) {
	authHandler := NewAuthHandler(s.Auth, s.Center, s.CookieSecure)
	cartHandler := NewCartHandler(s.Cart, s.Catalog, s.Center)
	wishlistHandler := NewWishlistHandler(s.Wishlist, s.Catalog, s.Auth, s.Cart, s.Center)
	homeHandler := NewHomeHandler(s.Catalog, s.Auth, s.Cart, s.Wishlist)
	uiHandler := NewUIHandler(s.Auth, s.Cart, s.Wishlist, s.Center)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.FS)))

	// Pages.
	mux.HandleFunc("GET /{$}", homeHandler.HandleHome)
	mux.HandleFunc("GET /wishlist", wishlistHandler.HandlePage)

	// Auth API.
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(s.Auth, http.HandlerFunc(authHandler.HandleMe)))

	// Auth modal.
	mux.HandleFunc("GET /auth/modal", authHandler.HandleOpenModal)
	mux.HandleFunc("POST /auth/modal", authHandler.HandleOpenModal)
	mux.HandleFunc("DELETE /auth/modal", authHandler.HandleCloseModal)
	mux.HandleFunc("POST /auth/modal/login", authHandler.HandleModalLogin)
	mux.HandleFunc("POST /auth/modal/register", authHandler.HandleModalRegister)
	mux.HandleFunc("POST /auth/social/{provider}", authHandler.HandleSocialLogin)

	// Cart.
	mux.HandleFunc("POST /cart/items/{id}", cartHandler.HandleAddItem)
	mux.HandleFunc("DELETE /cart/items/{id}", cartHandler.HandleRemoveItem)
	mux.HandleFunc("POST /cart/items/{id}/quantity", cartHandler.HandleUpdateQuantity)
	mux.HandleFunc("POST /cart/clear", cartHandler.HandleClear)
	mux.HandleFunc("GET /cart/dropdown", cartHandler.HandleDropdown)
	mux.HandleFunc("POST /cart/checkout", cartHandler.HandleCheckout)
	mux.HandleFunc("GET /api/cart", cartHandler.HandleItems)

	// Wishlist.
	mux.HandleFunc("POST /wishlist/items/{id}", wishlistHandler.HandleAddItem)
	mux.HandleFunc("POST /wishlist/items/{id}/toggle", wishlistHandler.HandleToggleItem)
	mux.HandleFunc("DELETE /wishlist/items/{id}", wishlistHandler.HandleRemoveItem)
	mux.HandleFunc("POST /wishlist/items/{id}/move-to-cart", wishlistHandler.HandleMoveToCart)
	mux.HandleFunc("POST /wishlist/clear", wishlistHandler.HandleClear)
	mux.HandleFunc("POST /wishlist/clear/confirmed", wishlistHandler.HandleClearConfirmed)
	mux.HandleFunc("GET /api/wishlist", wishlistHandler.HandleItems)

	// Live UI updates.
	mux.HandleFunc("GET /ui/updates", uiHandler.HandleUpdates)
	mux.HandleFunc("DELETE /ui/toasts/{id}", uiHandler.HandleDismissToast)
	mux.HandleFunc("DELETE /ui/prompts/{id}", uiHandler.HandleDismissPrompt)
}
