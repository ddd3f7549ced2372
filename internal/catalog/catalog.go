package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"progas_back_end/internal/models"
)

//go:embed products.json
var productsJSON []byte

// Catalog is the read-only product listing, loaded once at startup.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// Load parses the embedded product seed.
func Load() (*Catalog, error) {
	var seed struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(productsJSON, &seed); err != nil {
		return nil, fmt.Errorf("catalog: parsing product seed: %w", err)
	}

	c := &Catalog{
		products: seed.Products,
		byID:     make(map[int]models.Product, len(seed.Products)),
	}
	for _, p := range seed.Products {
		c.byID[p.ID] = p
	}
	return c, nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Search returns products whose name contains the query, case-insensitive.
// An empty query returns the full listing.
func (c *Catalog) Search(query string) []models.Product {
	if query == "" {
		return c.List()
	}
	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory filters products by exact category.
func (c *Catalog) ByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// StockSummary counts products per stock status, for the dashboard.
func (c *Catalog) StockSummary() (inStock, lowStock, outOfStock int) {
	for _, p := range c.products {
		switch p.StockStatus {
		case models.StockLowStock:
			lowStock++
		case models.StockOutOfStock:
			outOfStock++
		default:
			inStock++
		}
	}
	return
}
