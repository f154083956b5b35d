// Package session holds the single-user application state: the current
// profile and the shopping cart. It is the in-process equivalent of the
// storefront's browser session, persisted to a key-value store so that a
// restart picks up where the last run stopped.
package session

import (
	"encoding/json"
	"sync"

	"github.com/cloud-tech1/food-finds-clone/entity"
	"github.com/cloud-tech1/food-finds-clone/storage"
)

// Storage keys. Absence of a key and an empty value mean the same thing
// on read.
const (
	userKey = "user"
	cartKey = "cart"
)

// Store owns the current user profile and the cart. One instance per
// process; handlers share it, so reads and mutations are mutex-guarded.
// Derived values (count, total) are recomputed from the line items on
// every read and never stored.
type Store struct {
	mu      sync.RWMutex
	user    *entity.UserProfile
	cart    []entity.CartItem
	durable storage.Store
}

// NewStore builds a Store seeded from durable storage. Corrupt or absent
// values degrade to empty state; startup never fails because of them.
// A nil durable store leaves persistence off.
func NewStore(durable storage.Store) *Store {
	s := &Store{durable: durable}
	if durable == nil {
		return s
	}
	if raw, ok := durable.Get(userKey); ok {
		var u entity.UserProfile
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			s.user = &u
		}
	}
	if raw, ok := durable.Get(cartKey); ok {
		var items []entity.CartItem
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			s.cart = items
		}
	}
	return s
}

// Login replaces the current profile unconditionally. Last write wins;
// there is no credential check anywhere in this system.
func (s *Store) Login(profile entity.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &profile
	s.persistUser()
}

// Logout drops the profile and empties the cart. The cart is scoped to
// the session, so the cascade is intentional.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if s.durable != nil {
		s.durable.Remove(userKey)
	}
	s.clearCartLocked()
}

// AddToCart merges by item ID: a repeat add bumps the existing line's
// quantity by one in place, a first add appends with quantity 1. The
// incoming item's Quantity field is ignored.
func (s *Store) AddToCart(item entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity++
			s.persistCart()
			return
		}
	}
	item.Quantity = 1
	s.cart = append(s.cart, item)
	s.persistCart()
}

// RemoveFromCart deletes the line with the given item ID. Removing an
// absent ID is a no-op.
func (s *Store) RemoveFromCart(itemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(itemID)
}

// UpdateCartQuantity sets the line's quantity. Zero or below removes the
// line; this is the only sanctioned path for non-positive quantities.
// No upper bound.
func (s *Store) UpdateCartQuantity(itemID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(itemID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persistCart()
}

// ClearCart empties the cart and removes the storage key entirely rather
// than writing an empty list.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

// CurrentUser returns a copy of the profile, or nil when logged out.
func (s *Store) CurrentUser() *entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CartItems returns the lines in insertion order. The slice is a copy;
// mutating it does not touch the store.
func (s *Store) CartItems() []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entity.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartCount is the sum of quantities across all lines.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, it := range s.cart {
		count += it.Quantity
	}
	return count
}

// CartTotal is the sum of price*quantity across all lines.
func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, it := range s.cart {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) removeLocked(itemID int) {
	kept := s.cart[:0]
	for _, it := range s.cart {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.cart = kept
	s.persistCart()
}

func (s *Store) clearCartLocked() {
	s.cart = nil
	if s.durable != nil {
		s.durable.Remove(cartKey)
	}
}

// persistUser and persistCart rewrite the whole value under the key on
// every mutation. The medium is local and assumed reliable, so write
// errors are not surfaced to callers.

func (s *Store) persistUser() {
	if s.durable == nil || s.user == nil {
		return
	}
	if raw, err := json.Marshal(s.user); err == nil {
		s.durable.Set(userKey, string(raw))
	}
}

func (s *Store) persistCart() {
	if s.durable == nil {
		return
	}
	if raw, err := json.Marshal(s.cart); err == nil {
		s.durable.Set(cartKey, string(raw))
	}
}
