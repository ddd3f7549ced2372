package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"progas_back_end/internal/models"
	"progas_back_end/internal/storage"
)

// Snapshots live under cart:<session>; the same name doubles as the pub/sub
// channel for live cart sync.
const (
	cartKeyPrefix = "cart:"
	cartTTL       = 30 * 24 * time.Hour

	cartEventUpdated = "updated"
	cartEventCleared = "cleared"
)

// CartStore owns the active cart for one session. Construction rehydrates the
// persisted snapshot; every mutation rewrites it synchronously before
// returning. Durability is best-effort: snapshot read or write failures are
// logged and the store keeps working in memory.
type CartStore struct {
	mu    sync.Mutex
	kv    storage.KV
	key   string
	lines []models.CartLine
}

// NewCartStore loads the session's persisted cart, degrading to an empty cart
// when the snapshot is missing or unreadable.
func NewCartStore(kv storage.KV, sessionID string) *CartStore {
	s := &CartStore{kv: kv, key: cartKeyPrefix + sessionID}

	data, err := kv.Get(context.Background(), s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("⚠️ Cart snapshot read failed for %s, starting empty: %v", s.key, err)
		}
		return s
	}
	if err := json.Unmarshal([]byte(data), &s.lines); err != nil {
		log.Printf("⚠️ Cart snapshot corrupt for %s, starting empty: %v", s.key, err)
		s.lines = nil
	}
	return s
}

// AddToCart increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. At most one line exists per product id.
func (s *CartStore) AddToCart(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			s.persist(cartEventUpdated)
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{Product: product, Quantity: 1})
	s.persist(cartEventUpdated)
}

// RemoveFromCart deletes the line for the product id. Removing an absent id
// is a no-op.
func (s *CartStore) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartStore) removeLocked(productID int) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(cartEventUpdated)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to an absolute value. A quantity of
// zero or less removes the line.
func (s *CartStore) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			s.persist(cartEventUpdated)
			return
		}
	}
}

// ClearCart empties the cart.
func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.kv.Del(context.Background(), s.key); err != nil {
		log.Printf("⚠️ Cart snapshot delete failed for %s: %v", s.key, err)
	}
	if err := s.kv.Publish(context.Background(), s.key, cartEventCleared); err != nil {
		log.Printf("⚠️ Cart publish failed for %s: %v", s.key, err)
	}
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartStore) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of salePrice × quantity over all lines. It is derived from
// the lines on every call and never stored.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is the sum of all line quantities, not the number of lines.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// persist writes the full line list synchronously, then notifies subscribers.
// Callers must hold the mutex.
func (s *CartStore) persist(event string) {
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("⚠️ Cart snapshot encode failed for %s: %v", s.key, err)
		return
	}
	ctx := context.Background()
	if err := s.kv.Set(ctx, s.key, string(data), cartTTL); err != nil {
		log.Printf("⚠️ Cart snapshot write failed for %s: %v", s.key, err)
	}
	if err := s.kv.Publish(ctx, s.key, event); err != nil {
		log.Printf("⚠️ Cart publish failed for %s: %v", s.key, err)
	}
}
