package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/vault93/storefront/internal/domain"
)

// WishlistListener receives a snapshot of the wishlist after every
// change, including the swap on login and logout.
type WishlistListener func([]domain.WishlistEntry)

// CartAdder is the slice of the cart that moving a wishlist entry
// needs. *CartService satisfies it.
type CartAdder interface {
	AddItem(ctx context.Context, item domain.CartItem)
}

// WishlistService holds the logged-in user's wishlist. Every mutation
// requires a session; without one the operation fails with
// ErrLoginRequired and changes nothing. Wishlists are keyed by email,
// so each account keeps its own list across logins.
//
// Wire HandleSessionChange via AuthService.SubscribeSession so the
// list follows the session.
type WishlistService struct {
	repo domain.WishlistRepository
	auth SessionSource
	cart CartAdder

	mu          sync.Mutex
	entries     []domain.WishlistEntry
	listenerSeq int
	listeners   []wishlistListener

	// persistMu keeps snapshot and save as one unit so concurrent
	// mutations cannot land on disk out of order.
	persistMu sync.Mutex
}

type wishlistListener struct {
	id int
	fn WishlistListener
}

// NewWishlistService creates a WishlistService and loads the wishlist
// for any already-active session.
func NewWishlistService(ctx context.Context, repo domain.WishlistRepository, auth SessionSource, cart CartAdder) *WishlistService {
	s := &WishlistService{
		repo: repo,
		auth: auth,
		cart: cart,
	}
	if session := auth.CurrentUser(); session != nil {
		s.entries = s.load(ctx, session.Email)
	}
	return s
}

// Subscribe registers a listener for wishlist changes. Listeners run
// synchronously in registration order with a snapshot of the entries.
// The returned function removes the listener.
func (s *WishlistService) Subscribe(fn WishlistListener) func() {
	s.mu.Lock()
	s.listenerSeq++
	id := s.listenerSeq
	s.listeners = append(s.listeners, wishlistListener{id: id, fn: fn})
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

// AddItem saves a product to the wishlist. Duplicates are rejected
// with ErrAlreadyInWishlist so the caller can say so distinctly.
func (s *WishlistService) AddItem(ctx context.Context, entry domain.WishlistEntry) error {
	session, err := s.requireSession()
	if err != nil {
		return err
	}

	s.mu.Lock()
	for _, e := range s.entries {
		if e.ProductID == entry.ProductID {
			s.mu.Unlock()
			return domain.ErrAlreadyInWishlist
		}
	}
	entry.AddedAt = time.Now().UTC()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.persist(ctx, session.Email)
	s.notify()
	return nil
}

// RemoveItem drops a product from the wishlist. Removing an absent
// product succeeds without effect.
func (s *WishlistService) RemoveItem(ctx context.Context, productID string) error {
	session, err := s.requireSession()
	if err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.entries[:0]
	removed := false
	for _, e := range s.entries {
		if e.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	s.mu.Unlock()

	if !removed {
		return nil
	}
	s.persist(ctx, session.Email)
	s.notify()
	return nil
}

// ToggleItem adds the product if absent and removes it if present.
// It reports whether the product ended up in the wishlist.
func (s *WishlistService) ToggleItem(ctx context.Context, entry domain.WishlistEntry) (bool, error) {
	if _, err := s.requireSession(); err != nil {
		return false, err
	}

	if s.Contains(entry.ProductID) {
		return false, s.RemoveItem(ctx, entry.ProductID)
	}
	return true, s.AddItem(ctx, entry)
}

// Contains reports whether the product is wishlisted. It is always
// false when nobody is logged in.
func (s *WishlistService) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// MoveToCart adds a wishlist entry to the cart and then removes it
// from the wishlist. The entry stays wishlisted if it is missing, so a
// failed lookup never loses the product.
func (s *WishlistService) MoveToCart(ctx context.Context, productID string) error {
	session, err := s.requireSession()
	if err != nil {
		return err
	}

	s.mu.Lock()
	var found *domain.WishlistEntry
	for i := range s.entries {
		if s.entries[i].ProductID == productID {
			found = &s.entries[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	item := domain.CartItem{
		ProductID: found.ProductID,
		Brand:     found.Brand,
		Name:      found.Name,
		Price:     found.Price,
		Image:     found.Image,
	}
	s.mu.Unlock()

	s.cart.AddItem(ctx, item)

	s.mu.Lock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ProductID == productID {
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	s.mu.Unlock()

	s.persist(ctx, session.Email)
	s.notify()
	return nil
}

// Clear empties the wishlist.
func (s *WishlistService) Clear(ctx context.Context) error {
	session, err := s.requireSession()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	s.persist(ctx, session.Email)
	s.notify()
	return nil
}

// Items returns a snapshot of the wishlist in insertion order.
func (s *WishlistService) Items() []domain.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count returns the number of wishlisted products.
func (s *WishlistService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// HandleSessionChange loads the new session's wishlist, or clears the
// in-memory list on logout. The persisted rows are untouched; they
// come back on the next login.
func (s *WishlistService) HandleSessionChange(session *domain.Session) {
	var entries []domain.WishlistEntry
	if session != nil {
		entries = s.load(context.Background(), session.Email)
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	s.notify()
}

func (s *WishlistService) requireSession() (*domain.Session, error) {
	session := s.auth.CurrentUser()
	if session == nil {
		return nil, domain.ErrLoginRequired
	}
	return session, nil
}

func (s *WishlistService) load(ctx context.Context, email string) []domain.WishlistEntry {
	entries, err := s.repo.Load(ctx, email)
	if err != nil {
		slog.Error("load wishlist", "error", err)
		return nil
	}
	return entries
}

func (s *WishlistService) persist(ctx context.Context, email string) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	entries := make([]domain.WishlistEntry, len(s.entries))
	copy(entries, s.entries)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, email, entries); err != nil {
		slog.Error("persist wishlist", "error", fmt.Errorf("save wishlist: %w", err))
	}
}

func (s *WishlistService) notify() {
	s.mu.Lock()
	listeners := make([]wishlistListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(s.Items())
	}
}
