package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"progas_back_end/internal/models"
	"progas_back_end/internal/storage"
	"progas_back_end/internal/store"
	"progas_back_end/internal/utils"
)

type OrderHandler struct {
	Orders *store.OrderStore
	KV     storage.KV
}

// POST /api/checkout
//
// The store trusts its caller, so required-field and phone validation happens
// here at the boundary. The item snapshots and total come from the session's
// cart, which is cleared once the order is placed.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req struct {
		CustomerName string `json:"customerName"`
		Phone        string `json:"phone"`
		Address      string `json:"address"`
		Email        string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)

	if req.CustomerName == "" || req.Phone == "" || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone and address are required"})
		return
	}
	if !validPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
		return
	}

	cart := store.NewCartStore(h.KV, c.GetString("session_id"))
	lines := cart.Lines()
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.SalePrice,
			Quantity:  l.Quantity,
		})
	}

	order := h.Orders.PlaceOrder(store.PlaceOrderInput{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        items,
		Total:        cart.Total(),
	})

	cart.ClearCart()

	if req.Email != "" {
		go func(email string, order models.Order) {
			if err := utils.SendOrderConfirmation(email, order); err != nil {
				log.Printf("⚠️ Order confirmation mail failed for %s: %v", order.ID, err)
			}
		}(req.Email, order)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order placed",
		"orderId": order.ID,
		"status":  order.Status,
		"total":   order.Total,
	})
}

// GET /api/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	order, ok := h.Orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/track?q=<order-id-or-phone>
func (h *OrderHandler) Track(c *gin.Context) {
	identifier := c.Query("q")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing order id or phone number"})
		return
	}

	order, ok := h.Orders.TrackOrder(identifier)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/:id/qr
//
// PNG QR code of the public tracking URL, for the confirmation page and mail.
func (h *OrderHandler) TrackingQR(c *gin.Context) {
	id := c.Param("id")
	order, ok := h.Orders.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	baseURL := os.Getenv("FRONTEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	url := fmt.Sprintf("%s/track?q=%s", baseURL, order.ID)

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "QR generation failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// POST /api/orders/:id/advance
func (h *OrderHandler) Advance(c *gin.Context) {
	order, err := h.Orders.AdvanceStatus(c.Param("id"))
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, store.ErrStatusTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "order status can no longer change"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, order)
	}
}

// POST /api/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.Orders.CancelOrder(c.Param("id"))
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.Is(err, store.ErrNotCancellable):
		c.JSON(http.StatusConflict, gin.H{"error": "orders can only be cancelled within 2 hours of placement"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, order)
	}
}

// validPhone accepts 10 to 13 digits, ignoring spaces and a leading +.
func validPhone(phone string) bool {
	digits := 0
	for i, r := range strings.ReplaceAll(phone, " ", "") {
		if r == '+' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
		digits++
	}
	return digits >= 10 && digits <= 13
}
