package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"progas_back_end/internal/catalog"
	"progas_back_end/internal/models"
	"progas_back_end/internal/storage"
	"progas_back_end/internal/store"
)

type CartHandler struct {
	KV      storage.KV
	Catalog *catalog.Catalog
}

// cartFor rehydrates the session's cart from its snapshot. Each request is a
// full read-modify-write cycle against the snapshot store.
func (h *CartHandler) cartFor(c *gin.Context) *store.CartStore {
	return store.NewCartStore(h.KV, c.GetString("session_id"))
}

func cartPayload(cart *store.CartStore) gin.H {
	lines := cart.Lines()
	if lines == nil {
		lines = []models.CartLine{}
	}
	return gin.H{
		"items": lines,
		"total": cart.Total(),
		"count": cart.ItemCount(),
	}
}

// GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, cartPayload(h.cartFor(c)))
}

// POST /api/cart/add
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, ok := h.Catalog.Get(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart := h.cartFor(c)
	cart.AddToCart(product)
	c.JSON(http.StatusOK, cartPayload(cart))
}

// PUT /api/cart/quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID int `json:"productId" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cart := h.cartFor(c)
	cart.UpdateQuantity(input.ProductID, input.Quantity)
	c.JSON(http.StatusOK, cartPayload(cart))
}

// DELETE /api/cart/:productId
func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	cart := h.cartFor(c)
	cart.RemoveFromCart(productID)
	c.JSON(http.StatusOK, cartPayload(cart))
}

// DELETE /api/cart
func (h *CartHandler) Clear(c *gin.Context) {
	cart := h.cartFor(c)
	cart.ClearCart()
	c.JSON(http.StatusOK, cartPayload(cart))
}
