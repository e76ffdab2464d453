package handler

import (
	"log/slog"
	"net/http"

	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/internal/view"
)

// HomeHandler renders the storefront catalog page.
type HomeHandler struct {
	catalog  *service.CatalogService
	auth     *service.AuthService
	cart     *service.CartService
	wishlist *service.WishlistService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(catalog *service.CatalogService, auth *service.AuthService, cart *service.CartService, wishlist *service.WishlistService) *HomeHandler {
	return &HomeHandler{catalog: catalog, auth: auth, cart: cart, wishlist: wishlist}
}

// HandleHome renders the product grid.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.List(r.Context())
	if err != nil {
		slog.Error("list catalog", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	wishlisted := make(map[string]bool, len(products))
	for _, p := range products {
		if h.wishlist.Contains(p.ID) {
			wishlisted[p.ID] = true
		}
	}

	data := pageData("Shop", h.auth, h.cart, h.wishlist)
	view.Layout(data, view.CatalogPage(products, wishlisted)).Render(r.Context(), w)
}
