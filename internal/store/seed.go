package store

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"progas_back_end/internal/models"
)

//go:embed orders.json
var ordersJSON []byte

// SeedOrders parses the embedded sample orders the Order Store starts with.
func SeedOrders() ([]models.Order, error) {
	var seed struct {
		Orders []models.Order `json:"orders"`
	}
	if err := json.Unmarshal(ordersJSON, &seed); err != nil {
		return nil, fmt.Errorf("store: parsing order seed: %w", err)
	}
	return seed.Orders, nil
}

// SeedTestimonials returns the published customer quotes shown on the
// storefront home page.
func SeedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:    "Jane Doe",
			Rating:  5,
			Comment: "I've been using their gas cylinders for over a year now. The delivery is always prompt and the staff are very professional. Highly recommended!",
			Date:    "March 15, 2025",
		},
		{
			Name:    "John Smith",
			Rating:  4,
			Comment: "Great service and quality products. The Pro Gas refill has been my go-to for cooking. Would appreciate more delivery slot options though.",
			Date:    "February 28, 2025",
		},
		{
			Name:    "Mary Johnson",
			Rating:  5,
			Comment: "The website is so easy to use! I ordered a Men Gas refill and it was delivered the same day. Will definitely be ordering again.",
			Date:    "April 2, 2025",
		},
		{
			Name:    "Robert Brown",
			Rating:  5,
			Comment: "Not only do they deliver gas cylinders, but their electronics section is also amazing. Just bought a laptop and it works perfectly!",
			Date:    "March 20, 2025",
		},
	}
}
