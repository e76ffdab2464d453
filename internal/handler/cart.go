package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/internal/view"
)

// CartHandler handles cart mutations and the mini-cart dropdown.
type CartHandler struct {
	cart    *service.CartService
	catalog *service.CatalogService
	center  *notify.Center
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cart *service.CartService, catalog *service.CatalogService, center *notify.Center) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, center: center}
}

// HandleAddItem puts a catalog product in the cart.
// POST /cart/items/{id}
func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Unknown product.")
			return
		}
		slog.Error("get product for cart", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	h.cart.AddItem(r.Context(), h.catalog.CartItem(product))
	h.center.ShowToast(product.Name+" added to cart", notify.LevelSuccess)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemoveItem takes a product out of the cart.
// DELETE /cart/items/{id}
func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveItem(r.Context(), r.PathValue("id"))
	h.center.ShowToast("Removed from cart", notify.LevelInfo)
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateQuantity sets a cart line's quantity. Values below 1 are
// clamped by the service.
// POST /cart/items/{id}/quantity?q=N
func (h *CartHandler) HandleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.Atoi(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity.")
		return
	}

	h.cart.UpdateQuantity(r.Context(), r.PathValue("id"), quantity)
	w.WriteHeader(http.StatusNoContent)
}

// HandleClear empties the cart.
// POST /cart/clear
func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// HandleDropdown patches the mini-cart panel into the page.
// GET /cart/dropdown
func (h *CartHandler) HandleDropdown(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.CartDropdown(h.cart.Items(), h.cart.Total()))
}

// HandleItems returns the cart contents as JSON.
// GET /api/cart
func (h *CartHandler) HandleItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items": toCartItemDTOs(h.cart.Items()),
		"total": h.cart.Total(),
		"count": h.cart.ItemCount(),
	})
}

// HandleCheckout sends the browser to the external checkout. Without a
// session it shows the sign-in prompt instead.
// POST /cart/checkout
func (h *CartHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	url, err := h.cart.CheckoutURL()
	if err != nil {
		if errors.Is(err, domain.ErrLoginRequired) {
			showLoginPrompt(h.center, "Sign in to check out.")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		slog.Error("checkout", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.Redirect(url)
}

// showLoginPrompt raises the blocking sign-in prompt. Its confirm
// button opens the auth modal.
func showLoginPrompt(center *notify.Center, message string) {
	center.ShowPrompt(notify.Prompt{
		Icon:         "🔒",
		Title:        "Sign In Required",
		Message:      message,
		ConfirmLabel: "Login Now",
		CancelLabel:  "Not Now",
		ConfirmPath:  "/auth/modal",
	})
}
