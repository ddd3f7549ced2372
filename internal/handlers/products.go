package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"progas_back_end/internal/catalog"
	"progas_back_end/internal/models"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

// GET /api/products?q=&category=
func (h *ProductHandler) List(c *gin.Context) {
	products := h.Catalog.Search(c.Query("q"))

	if category := c.Query("category"); category != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, ok := h.Catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}
