package handler

import (
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/vault93/storefront/internal/domain"
	"github.com/vault93/storefront/internal/notify"
	"github.com/vault93/storefront/internal/service"
	"github.com/vault93/storefront/internal/view"
)

// UIHandler owns the long-lived SSE stream that keeps the badges,
// toasts, and prompt overlay current, plus the dismiss endpoints the
// rendered notifications post back to.
type UIHandler struct {
	auth     *service.AuthService
	cart     *service.CartService
	wishlist *service.WishlistService
	center   *notify.Center
}

// NewUIHandler creates a new UIHandler.
func NewUIHandler(auth *service.AuthService, cart *service.CartService, wishlist *service.WishlistService, center *notify.Center) *UIHandler {
	return &UIHandler{auth: auth, cart: cart, wishlist: wishlist, center: center}
}

// HandleUpdates streams UI patches until the client disconnects. Any
// change in any service coalesces into one re-render; the channel is
// buffered so a burst of changes never blocks a listener.
// GET /ui/updates
func (h *UIHandler) HandleUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	patch := func() {
		sse.PatchElementTempl(view.CartBadge(h.cart.ItemCount()))
		sse.PatchElementTempl(view.WishlistBadge(h.wishlist.Count()))
		sse.PatchElementTempl(view.ToastStack(h.center.Toasts()))
		sse.PatchElementTempl(view.PromptOverlay(h.center.Prompt()))
	}

	events := make(chan struct{}, 8)
	signal := func() {
		select {
		case events <- struct{}{}:
		default:
		}
	}

	unsubscribers := []func(){
		h.cart.Subscribe(func([]domain.CartItem) { signal() }),
		h.wishlist.Subscribe(func([]domain.WishlistEntry) { signal() }),
		h.auth.SubscribeSession(func(*domain.Session) { signal() }),
		h.center.Subscribe(signal),
	}
	defer func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}()

	patch()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-events:
			patch()
		}
	}
}

// HandleDismissToast starts a toast's exit transition.
// DELETE /ui/toasts/{id}
func (h *UIHandler) HandleDismissToast(w http.ResponseWriter, r *http.Request) {
	h.center.DismissToast(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// HandleDismissPrompt cancels the prompt. Backdrop clicks and the
// cancel button both land here.
// DELETE /ui/prompts/{id}
func (h *UIHandler) HandleDismissPrompt(w http.ResponseWriter, r *http.Request) {
	h.center.DismissPrompt(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
