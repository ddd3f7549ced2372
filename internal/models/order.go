package models

import "time"

type OrderStatus string

const (
	StatusProcessing     OrderStatus = "Processing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the following status in the forward-only progression
// Processing → Out for Delivery → Delivered. Terminal statuses return
// themselves with ok=false.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusProcessing:
		return StatusOutForDelivery, true
	case StatusOutForDelivery:
		return StatusDelivered, true
	default:
		return s, false
	}
}

// OrderItem captures a product at the moment it was ordered. Later catalog
// price changes must not alter historical orders.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        OrderStatus `json:"status"`
	OrderDate     time.Time   `json:"orderDate"`

	// Delivery metadata, present once dispatch has been arranged.
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
	DeliveryPerson  string     `json:"deliveryPerson,omitempty"`
	DeliveryPhone   string     `json:"deliveryPhone,omitempty"`
	DeliveryVehicle string     `json:"deliveryVehicle,omitempty"`
	EstimatedTime   string     `json:"estimatedTime,omitempty"`
}

// PaymentCashOnDelivery is the only payment method currently supported.
const PaymentCashOnDelivery = "Cash on delivery"
