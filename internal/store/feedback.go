package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"progas_back_end/internal/models"
)

// FeedbackStore collects contact and feedback submissions in memory and holds
// the published testimonials.
type FeedbackStore struct {
	mu           sync.RWMutex
	testimonials []models.Testimonial
	feedback     []models.Feedback
	contacts     []models.ContactMessage
}

func NewFeedbackStore(testimonials []models.Testimonial) *FeedbackStore {
	return &FeedbackStore{testimonials: testimonials}
}

// Testimonials returns the published customer quotes.
func (s *FeedbackStore) Testimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

// AddFeedback records a feedback submission and returns it with an id and
// timestamp assigned.
func (s *FeedbackStore) AddFeedback(f models.Feedback) models.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = uuid.NewString()
	f.ReceivedAt = time.Now()
	s.feedback = append(s.feedback, f)
	return f
}

// AddContact records a contact-form submission and returns it with an id and
// timestamp assigned.
func (s *FeedbackStore) AddContact(m models.ContactMessage) models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	m.ReceivedAt = time.Now()
	s.contacts = append(s.contacts, m)
	return m
}

// Feedback returns all stored feedback submissions.
func (s *FeedbackStore) Feedback() []models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Feedback, len(s.feedback))
	copy(out, s.feedback)
	return out
}
