package models

// CartLine is one product-and-quantity entry in a cart. The product fields are
// a snapshot taken when the line was first added; quantity is always >= 1.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Product.SalePrice * float64(l.Quantity)
}
