package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vault93/storefront/internal/domain"
)

// SessionSource answers session questions for services that gate on
// login state. *AuthService satisfies it.
type SessionSource interface {
	IsLoggedIn() bool
	CurrentUser() *domain.Session
}

// CartListener receives a snapshot of the cart after every mutation.
type CartListener func([]domain.CartItem)

// CartService holds the shopping cart. The in-memory item list is the
// source of truth; every mutation is written through to the repository
// and a storage failure only costs durability, never the operation.
//
// The scope decides whose cart this is: device scope keeps one shared
// cart regardless of login, user scope keys the cart by the active
// session's email.
type CartService struct {
	repo        domain.CartRepository
	auth        SessionSource
	scope       domain.CartScope
	checkoutURL string

	mu          sync.Mutex
	items       []domain.CartItem
	listenerSeq int
	listeners   []cartListener

	// persistMu keeps snapshot and save as one unit so concurrent
	// mutations cannot land on disk out of order.
	persistMu sync.Mutex
}

type cartListener struct {
	id int
	fn CartListener
}

// NewCartService creates a CartService and loads the persisted cart
// for the current scope key. Load failures are logged and leave the
// cart empty.
func NewCartService(ctx context.Context, repo domain.CartRepository, auth SessionSource, scope domain.CartScope, checkoutURL string) *CartService {
	s := &CartService{
		repo:        repo,
		auth:        auth,
		scope:       scope,
		checkoutURL: checkoutURL,
	}
	s.items = s.load(ctx, s.scopeKey())
	return s
}

// Subscribe registers a listener for cart changes. Listeners run
// synchronously in registration order with a snapshot of the items.
// The returned function removes the listener.
func (s *CartService) Subscribe(fn CartListener) func() {
	s.mu.Lock()
	s.listenerSeq++
	id := s.listenerSeq
	s.listeners = append(s.listeners, cartListener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// AddItem puts a product in the cart. Adding a product already present
// increments its quantity instead of inserting a duplicate line.
func (s *CartService) AddItem(ctx context.Context, item domain.CartItem) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		s.items = append(s.items, item)
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// RemoveItem takes a product out of the cart entirely. Removing an
// absent product is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	s.mu.Unlock()

	if !removed {
		return
	}
	s.persist(ctx)
	s.notify()
}

// UpdateQuantity sets a product's quantity, clamped to a minimum of 1.
// Unknown products are ignored.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].ProductID == productID {
			changed = s.items[i].Quantity != quantity
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	if !changed {
		return
	}
	s.persist(ctx)
	s.notify()
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist(ctx)
	s.notify()
}

// Items returns a snapshot of the cart in insertion order.
func (s *CartService) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the cart's price sum weighted by quantity.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units across all lines.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// CheckoutURL returns the external checkout destination. Checkout
// requires a session; without one it returns ErrLoginRequired.
func (s *CartService) CheckoutURL() (string, error) {
	if !s.auth.IsLoggedIn() {
		return "", domain.ErrLoginRequired
	}
	return s.checkoutURL, nil
}

// HandleSessionChange swaps the cart to the new session's scope key.
// Only meaningful under user scope; the device-scoped cart ignores
// session changes. Wire it via AuthService.SubscribeSession.
func (s *CartService) HandleSessionChange(session *domain.Session) {
	if s.scope != domain.CartScopeUser {
		return
	}

	key := ""
	if session != nil {
		key = session.Email
	}

	items := s.load(context.Background(), key)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify()
}

func (s *CartService) scopeKey() string {
	if s.scope != domain.CartScopeUser {
		return ""
	}
	if session := s.auth.CurrentUser(); session != nil {
		return session.Email
	}
	return ""
}

func (s *CartService) load(ctx context.Context, key string) []domain.CartItem {
	items, err := s.repo.Load(ctx, key)
	if err != nil {
		slog.Error("load cart", "error", err)
		return nil
	}
	return items
}

func (s *CartService) persist(ctx context.Context) {
	key := s.scopeKey()

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, key, items); err != nil {
		slog.Error("persist cart", "error", fmt.Errorf("save cart: %w", err))
	}
}

func (s *CartService) notify() {
	s.mu.Lock()
	listeners := make([]cartListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(s.Items())
	}
}
