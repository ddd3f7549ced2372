package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"progas_back_end/internal/catalog"
	"progas_back_end/internal/store"
)

type AnalyticsHandler struct {
	Orders  *store.OrderStore
	Catalog *catalog.Catalog
}

// GET /api/analytics/dashboard
//
// Order and stock figures are computed live from the stores; the engagement
// and revenue series are static sample data until real traffic metrics exist.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	orders := h.Orders.Orders()

	totalOrders := 0
	totalRevenue := 0.0
	statusCount := make(map[string]int)
	for _, o := range orders {
		totalOrders++
		totalRevenue += o.Total
		statusCount[string(o.Status)]++
	}

	averageOrderValue := 0.0
	if totalOrders > 0 {
		averageOrderValue = totalRevenue / float64(totalOrders)
	}

	inStock, lowStock, outOfStock := h.Catalog.StockSummary()

	c.JSON(http.StatusOK, gin.H{
		"orders": gin.H{
			"total":             totalOrders,
			"totalRevenue":      totalRevenue,
			"averageOrderValue": averageOrderValue,
			"byStatus":          statusCount,
		},
		"stock": gin.H{
			"total":      inStock + lowStock + outOfStock,
			"inStock":    inStock,
			"lowStock":   lowStock,
			"outOfStock": outOfStock,
		},
		"weeklyEngagement": weeklyEngagement,
		"monthlyRevenue":   monthlyRevenue,
		"topQueries":       topQueries,
		"categorySales":    categorySales,
	})
}

// Static sample series, mirroring what the storefront dashboard renders.
var (
	weeklyEngagement = []gin.H{
		{"name": "Mon", "visitors": 420, "orders": 24},
		{"name": "Tue", "visitors": 310, "orders": 14},
		{"name": "Wed", "visitors": 280, "orders": 19},
		{"name": "Thu", "visitors": 350, "orders": 22},
		{"name": "Fri", "visitors": 390, "orders": 31},
		{"name": "Sat", "visitors": 510, "orders": 38},
		{"name": "Sun", "visitors": 460, "orders": 27},
	}

	monthlyRevenue = []gin.H{
		{"month": "Jan", "revenue": 650000},
		{"month": "Feb", "revenue": 740000},
		{"month": "Mar", "revenue": 680000},
		{"month": "Apr", "revenue": 850000},
	}

	topQueries = []gin.H{
		{"query": "Gas refill prices", "count": 245},
		{"query": "Same-day delivery areas", "count": 178},
		{"query": "Cylinder exchange", "count": 155},
		{"query": "Payment on delivery", "count": 121},
		{"query": "Electronics warranty", "count": 98},
	}

	categorySales = []gin.H{
		{"name": "gas-refill", "value": 45},
		{"name": "gas-cylinder", "value": 20},
		{"name": "accessories", "value": 15},
		{"name": "electronics", "value": 20},
	}
)
