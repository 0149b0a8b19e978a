package session

import (
	"sync"

	"aurora-store/internal/domain"
)

// Store keeps per-identity state keyed by session token. Each identity's
// cart is isolated storage; mutations for one identity are serialized by a
// per-state mutex so concurrent tabs of the same browser cannot interleave
// partial updates.
type Store struct {
	mu     sync.Mutex
	states map[string]*state
}

type state struct {
	mu    sync.Mutex
	items map[string]int
	order []string
}

func NewStore() *Store {
	return &Store{states: make(map[string]*state)}
}

func (s *Store) state(sid string) *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sid]
	if !ok {
		st = &state{items: make(map[string]int)}
		s.states[sid] = st
	}
	return st
}

// AddItem adds qty of a product to the identity's cart. Quantities for the
// same product sum; a new product keeps its insertion position. Returns the
// new total item count.
func (s *Store) AddItem(sid, productID string, qty int) int {
	st := s.state(sid)
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.items[productID]; !ok {
		st.order = append(st.order, productID)
	}
	st.items[productID] += qty
	return countLocked(st)
}

// RemoveItem drops a product from the cart. Removing an absent product is a
// no-op. Returns the new total item count.
func (s *Store) RemoveItem(sid, productID string) int {
	st := s.state(sid)
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.items[productID]; ok {
		delete(st.items, productID)
		for i, id := range st.order {
			if id == productID {
				st.order = append(st.order[:i], st.order[i+1:]...)
				break
			}
		}
	}
	return countLocked(st)
}

// ClearCart empties the identity's cart.
func (s *Store) ClearCart(sid string) {
	st := s.state(sid)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.items = make(map[string]int)
	st.order = nil
}

// Cart returns the identity's cart entries in insertion order.
func (s *Store) Cart(sid string) []domain.CartEntry {
	st := s.state(sid)
	st.mu.Lock()
	defer st.mu.Unlock()
	entries := make([]domain.CartEntry, 0, len(st.order))
	for _, id := range st.order {
		entries = append(entries, domain.CartEntry{ProductID: id, Quantity: st.items[id]})
	}
	return entries
}

// Count returns the sum of all quantities in the identity's cart.
func (s *Store) Count(sid string) int {
	st := s.state(sid)
	st.mu.Lock()
	defer st.mu.Unlock()
	return countLocked(st)
}

func countLocked(st *state) int {
	total := 0
	for _, qty := range st.items {
		total += qty
	}
	return total
}
