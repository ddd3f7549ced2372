package models

import "time"

// ContactMessage is a submission from the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Feedback is a rating-and-comment submission from the feedback form.
type Feedback struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Testimonial is a published customer quote shown on the storefront.
type Testimonial struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
	Avatar  string `json:"avatar,omitempty"`
}
