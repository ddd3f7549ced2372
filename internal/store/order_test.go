package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progas_back_end/internal/models"
)

var orderIDPattern = regexp.MustCompile(`^ORD\d{5}$`)

func seededStore(t *testing.T) *OrderStore {
	t.Helper()
	seed, err := SeedOrders()
	require.NoError(t, err)
	return NewOrderStore(seed)
}

func refillInput() PlaceOrderInput {
	return PlaceOrderInput{
		CustomerName: "Alice Wanjiku",
		Phone:        "0745678901",
		Address:      "78 Kiambu Road, Nairobi",
		Items: []models.OrderItem{
			{ProductID: 1, Name: "Pro Gas Refill", Price: 1250, Quantity: 2},
		},
		Total: 2500,
	}
}

func TestSeedOrders(t *testing.T) {
	seed, err := SeedOrders()
	require.NoError(t, err)
	require.Len(t, seed, 3)
	assert.Equal(t, "ORD12345", seed[0].ID)
	assert.Equal(t, models.StatusDelivered, seed[0].Status)
	require.Len(t, seed[1].Items, 2)
	assert.Equal(t, 2250.0, seed[1].Total)
}

func TestPlaceOrder(t *testing.T) {
	s := seededStore(t)
	before := len(s.Orders())

	order := s.PlaceOrder(refillInput())

	assert.Regexp(t, orderIDPattern, order.ID)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, models.PaymentCashOnDelivery, order.PaymentMethod)
	assert.Equal(t, 2500.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.WithinDuration(t, time.Now(), order.OrderDate, time.Minute)
	assert.Len(t, s.Orders(), before+1)
}

func TestPlaceOrderGeneratesUniqueIDs(t *testing.T) {
	s := seededStore(t)

	seen := map[string]bool{}
	for _, o := range s.Orders() {
		seen[o.ID] = true
	}
	for i := 0; i < 500; i++ {
		order := s.PlaceOrder(refillInput())
		assert.False(t, seen[order.ID], "duplicate id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestPlaceOrderSnapshotsItems(t *testing.T) {
	s := seededStore(t)
	in := refillInput()

	order := s.PlaceOrder(in)

	// Mutating the caller's slice must not reach the stored order
	in.Items[0].Price = 9999
	stored, ok := s.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, 1250.0, stored.Items[0].Price)
}

func TestTrackOrderByID(t *testing.T) {
	s := seededStore(t)

	order, ok := s.TrackOrder("ORD12345")
	require.True(t, ok)
	assert.Equal(t, "John Doe", order.CustomerName)

	lower, ok := s.TrackOrder("ord12345")
	require.True(t, ok)
	assert.Equal(t, order.ID, lower.ID)
}

func TestTrackOrderByPhone(t *testing.T) {
	s := seededStore(t)

	order, ok := s.TrackOrder("0712345678")
	require.True(t, ok)
	assert.Equal(t, "ORD12345", order.ID)

	// Whitespace ignored on both sides
	spaced, ok := s.TrackOrder("0712 345 678")
	require.True(t, ok)
	assert.Equal(t, "ORD12345", spaced.ID)
}

func TestTrackOrderPhoneTiePicksMostRecent(t *testing.T) {
	s := seededStore(t)
	in := refillInput()

	base := time.Now()
	s.now = func() time.Time { return base }
	s.PlaceOrder(in)
	s.now = func() time.Time { return base.Add(time.Minute) }
	second := s.PlaceOrder(in)

	tracked, ok := s.TrackOrder(in.Phone)
	require.True(t, ok)
	assert.Equal(t, second.ID, tracked.ID)
}

func TestTrackOrderNotFound(t *testing.T) {
	s := seededStore(t)

	_, ok := s.TrackOrder("ORD99999")
	assert.False(t, ok)

	_, ok = s.TrackOrder("0799999999")
	assert.False(t, ok)

	_, ok = s.TrackOrder("")
	assert.False(t, ok)
}

func TestAdvanceStatusForwardOnly(t *testing.T) {
	s := seededStore(t)
	order := s.PlaceOrder(refillInput())

	advanced, err := s.AdvanceStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOutForDelivery, advanced.Status)

	advanced, err = s.AdvanceStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, advanced.Status)

	_, err = s.AdvanceStatus(order.ID)
	assert.ErrorIs(t, err, ErrStatusTerminal)
}

func TestAdvanceStatusUnknownOrder(t *testing.T) {
	s := seededStore(t)
	_, err := s.AdvanceStatus("ORD00000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelOrderWithinWindow(t *testing.T) {
	s := seededStore(t)
	order := s.PlaceOrder(refillInput())

	cancelled, err := s.CancelOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Cancelled is terminal
	_, err = s.AdvanceStatus(order.ID)
	assert.ErrorIs(t, err, ErrStatusTerminal)
	_, err = s.CancelOrder(order.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelOrderAfterWindow(t *testing.T) {
	s := seededStore(t)
	order := s.PlaceOrder(refillInput())

	s.now = func() time.Time { return order.OrderDate.Add(CancelWindow + time.Second) }

	_, err := s.CancelOrder(order.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelOrderOnceDispatched(t *testing.T) {
	s := seededStore(t)
	order := s.PlaceOrder(refillInput())

	_, err := s.AdvanceStatus(order.ID)
	require.NoError(t, err)

	_, err = s.CancelOrder(order.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}
