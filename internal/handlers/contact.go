package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"progas_back_end/internal/models"
	"progas_back_end/internal/store"
	"progas_back_end/internal/utils"
)

type ContactHandler struct {
	Feedback *store.FeedbackStore
}

// POST /api/contact
func (h *ContactHandler) Contact(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and message are required"})
		return
	}

	msg := h.Feedback.AddContact(models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	})

	go func(msg models.ContactMessage) {
		if err := utils.SendContactNotification(msg); err != nil {
			log.Printf("⚠️ Contact notification mail failed: %v", err)
		}
	}(msg)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for reaching out! We will get back to you shortly.",
		"id":      msg.ID,
	})
}

// POST /api/feedback
func (h *ContactHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Comment) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and comment are required"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	fb := h.Feedback.AddFeedback(models.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your feedback! We appreciate your time.",
		"id":      fb.ID,
	})
}

// GET /api/testimonials
func (h *ContactHandler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": h.Feedback.Testimonials()})
}
