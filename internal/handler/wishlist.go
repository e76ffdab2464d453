package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/internal/view"
)

// WishlistHandler handles the wishlist page and mutations. Every
// mutation is login-gated by the service; this handler turns the
// rejection into the sign-in prompt.
type WishlistHandler struct {
	wishlist *service.WishlistService
	catalog  *service.CatalogService
	auth     *service.AuthService
	cart     *service.CartService
	center   *notify.Center
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlist *service.WishlistService, catalog *service.CatalogService, auth *service.AuthService, cart *service.CartService, center *notify.Center) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, catalog: catalog, auth: auth, cart: cart, center: center}
}

// HandlePage renders the wishlist page.
// GET /wishlist
func (h *WishlistHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	data := pageData("Wishlist", h.auth, h.cart, h.wishlist)
	view.Layout(data, view.WishlistPage(h.wishlist.Items(), data.LoggedIn)).Render(r.Context(), w)
}

// HandleAddItem saves a product to the wishlist.
// POST /wishlist/items/{id}
func (h *WishlistHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Unknown product.")
			return
		}
		slog.Error("get product for wishlist", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	err = h.wishlist.AddItem(r.Context(), h.catalog.WishlistEntry(product))
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		showLoginPrompt(h.center, "Sign in to save items to your wishlist.")
	case errors.Is(err, domain.ErrAlreadyInWishlist):
		h.center.ShowToast(product.Name+" is already in your wishlist", notify.LevelInfo)
	case err != nil:
		slog.Error("add wishlist item", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	default:
		h.center.ShowToast(product.Name+" added to wishlist ♥", notify.LevelSuccess)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleToggleItem flips a product's wishlist membership.
// POST /wishlist/items/{id}/toggle
func (h *WishlistHandler) HandleToggleItem(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Unknown product.")
			return
		}
		slog.Error("get product for wishlist toggle", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	added, err := h.wishlist.ToggleItem(r.Context(), h.catalog.WishlistEntry(product))
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		showLoginPrompt(h.center, "Sign in to save items to your wishlist.")
	case err != nil:
		slog.Error("toggle wishlist item", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	case added:
		h.center.ShowToast(product.Name+" added to wishlist ♥", notify.LevelSuccess)
	default:
		h.center.ShowToast(product.Name+" removed from wishlist", notify.LevelInfo)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveItem drops a product from the wishlist.
// DELETE /wishlist/items/{id}
func (h *WishlistHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.wishlist.RemoveItem(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		showLoginPrompt(h.center, "Sign in to manage your wishlist.")
	case err != nil:
		slog.Error("remove wishlist item", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	default:
		h.center.ShowToast("Removed from wishlist", notify.LevelInfo)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMoveToCart moves a wishlist entry into the cart.
// POST /wishlist/items/{id}/move-to-cart
func (h *WishlistHandler) HandleMoveToCart(w http.ResponseWriter, r *http.Request) {
	err := h.wishlist.MoveToCart(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		showLoginPrompt(h.center, "Sign in to manage your wishlist.")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "That item is not in your wishlist.")
		return
	case err != nil:
		slog.Error("move wishlist item to cart", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	default:
		h.center.ShowToast("Moved to cart", notify.LevelSuccess)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear asks for confirmation before emptying the wishlist.
// POST /wishlist/clear
func (h *WishlistHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	if !h.auth.IsLoggedIn() {
		showLoginPrompt(h.center, "Sign in to manage your wishlist.")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.center.ShowPrompt(notify.Prompt{
		Icon:         "🗑️",
		Title:        "Clear Wishlist?",
		Message:      "This removes every saved item. You cannot undo this.",
		ConfirmLabel: "Clear All",
		CancelLabel:  "Keep Items",
		ConfirmPath:  "/wishlist/clear/confirmed",
	})
	w.WriteHeader(http.StatusNoContent)
}

// HandleClearConfirmed empties the wishlist after the prompt confirm.
// POST /wishlist/clear/confirmed
func (h *WishlistHandler) HandleClearConfirmed(w http.ResponseWriter, r *http.Request) {
	h.center.DismissCurrentPrompt()

	err := h.wishlist.Clear(r.Context())
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		showLoginPrompt(h.center, "Sign in to manage your wishlist.")
	case err != nil:
		slog.Error("clear wishlist", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	default:
		h.center.ShowToast("Wishlist cleared", notify.LevelInfo)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleItems returns the wishlist as JSON.
// GET /api/wishlist
func (h *WishlistHandler) HandleItems(w http.ResponseWriter, r *http.Request) {
	if !h.auth.IsLoggedIn() {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": toWishlistEntryDTOs(h.wishlist.Items()),
		"count": h.wishlist.Count(),
	})
}
