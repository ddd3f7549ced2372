package store

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"progas_back_end/internal/models"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrStatusTerminal = errors.New("order status can no longer change")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)

// CancelWindow is how long after placement a Processing order may still be
// cancelled, matching the window advertised to customers.
const CancelWindow = 2 * time.Hour

// PlaceOrderInput carries the checkout details. Field validation (required
// name, phone, address) happens at the HTTP boundary; the store trusts its
// caller.
type PlaceOrderInput struct {
	CustomerName string
	Phone        string
	Address      string
	Items        []models.OrderItem
	Total        float64
}

// OrderStore owns the order collection. Orders are seeded once at startup,
// created via PlaceOrder and never deleted; status is the only field that
// changes after creation.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	ids    map[string]int // lowercase id → index into orders
	now    func() time.Time
}

func NewOrderStore(seed []models.Order) *OrderStore {
	s := &OrderStore{
		orders: make([]models.Order, 0, len(seed)+16),
		ids:    make(map[string]int),
		now:    time.Now,
	}
	for _, o := range seed {
		s.ids[strings.ToLower(o.ID)] = len(s.orders)
		s.orders = append(s.orders, o)
	}
	return s
}

// PlaceOrder creates a new order with a fresh id, status Processing and the
// current time, and returns it. The items and total are stored as given, a
// frozen snapshot of the cart at checkout.
func (s *OrderStore) PlaceOrder(in PlaceOrderInput) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.OrderItem, len(in.Items))
	copy(items, in.Items)

	order := models.Order{
		ID:            s.newIDLocked(),
		CustomerName:  in.CustomerName,
		Phone:         in.Phone,
		Address:       in.Address,
		Items:         items,
		Total:         in.Total,
		PaymentMethod: models.PaymentCashOnDelivery,
		Status:        models.StatusProcessing,
		OrderDate:     s.now(),
	}

	s.ids[strings.ToLower(order.ID)] = len(s.orders)
	s.orders = append(s.orders, order)
	return order
}

// newIDLocked generates ORD plus a random 5-digit suffix, regenerating on
// collision with any existing order.
func (s *OrderStore) newIDLocked() string {
	for {
		id := fmt.Sprintf("ORD%d", 10000+rand.Intn(90000))
		if _, taken := s.ids[strings.ToLower(id)]; !taken {
			return id
		}
	}
}

// TrackOrder finds an order by id (case-insensitive) or by phone number
// (whitespace ignored on both sides). An exact id match wins; when several
// orders share the phone number, the most recently placed one is returned.
func (s *OrderStore) TrackOrder(identifier string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.ids[strings.ToLower(strings.TrimSpace(identifier))]; ok {
		return s.orders[i], true
	}

	phone := normalizePhone(identifier)
	if phone == "" {
		return models.Order{}, false
	}
	var match models.Order
	found := false
	for _, o := range s.orders {
		if normalizePhone(o.Phone) != phone {
			continue
		}
		if !found || o.OrderDate.After(match.OrderDate) {
			match = o
			found = true
		}
	}
	return match, found
}

// Get returns the order with the given id, case-insensitive.
func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.ids[strings.ToLower(id)]
	if !ok {
		return models.Order{}, false
	}
	return s.orders[i], true
}

// AdvanceStatus moves an order one step forward: Processing → Out for
// Delivery → Delivered. Delivered and Cancelled are terminal.
func (s *OrderStore) AdvanceStatus(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.ids[strings.ToLower(id)]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	next, ok := s.orders[i].Status.Next()
	if !ok {
		return models.Order{}, ErrStatusTerminal
	}
	s.orders[i].Status = next
	return s.orders[i], nil
}

// CancelOrder cancels an order that is still Processing and was placed less
// than CancelWindow ago. Cancelled is terminal.
func (s *OrderStore) CancelOrder(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.ids[strings.ToLower(id)]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	o := s.orders[i]
	if o.Status != models.StatusProcessing || s.now().Sub(o.OrderDate) >= CancelWindow {
		return models.Order{}, ErrNotCancellable
	}
	s.orders[i].Status = models.StatusCancelled
	return s.orders[i], nil
}

// Orders returns a copy of the collection in insertion order.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func normalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
