package models

// Product is a read-only catalog record. The cart and order flows reference
// products but never mutate them.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Images       []string `json:"images"`
	RegularPrice float64  `json:"regularPrice"`
	SalePrice    float64  `json:"salePrice"`
	Category     string   `json:"category"`
	StockStatus  string   `json:"stockStatus"`
}

const (
	StockInStock    = "in-stock"
	StockLowStock   = "low-stock"
	StockOutOfStock = "out-of-stock"
)
