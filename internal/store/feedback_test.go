package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progas_back_end/internal/models"
)

func TestFeedbackStore(t *testing.T) {
	s := NewFeedbackStore(SeedTestimonials())

	require.Len(t, s.Testimonials(), 4)

	fb := s.AddFeedback(models.Feedback{Name: "Alice", Rating: 5, Comment: "Fast delivery"})
	assert.NotEmpty(t, fb.ID)
	assert.False(t, fb.ReceivedAt.IsZero())
	require.Len(t, s.Feedback(), 1)

	msg := s.AddContact(models.ContactMessage{Name: "Bob", Subject: "Refill", Message: "Do you deliver to Karen?"})
	assert.NotEmpty(t, msg.ID)
	assert.NotEqual(t, fb.ID, msg.ID)
}
