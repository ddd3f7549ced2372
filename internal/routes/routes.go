package routes

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"progas_back_end/internal/catalog"
	"progas_back_end/internal/handlers"
	"progas_back_end/internal/middleware"
	"progas_back_end/internal/storage"
	"progas_back_end/internal/store"
)

// Deps are the shared store instances, constructed once in main and injected
// here so every consumer observes the same state.
type Deps struct {
	KV       storage.KV
	Redis    *redis.Client
	Catalog  *catalog.Catalog
	Orders   *store.OrderStore
	Feedback *store.FeedbackStore
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.Use(corsConfig())
	r.Use(middleware.EnsureSession())

	products := &handlers.ProductHandler{Catalog: deps.Catalog}
	cart := &handlers.CartHandler{KV: deps.KV, Catalog: deps.Catalog}
	cartWS := &handlers.CartWSHandler{Redis: deps.Redis}
	orders := &handlers.OrderHandler{Orders: deps.Orders, KV: deps.KV}
	contact := &handlers.ContactHandler{Feedback: deps.Feedback}
	analytics := &handlers.AnalyticsHandler{Orders: deps.Orders, Catalog: deps.Catalog}

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)

		api.GET("/cart", cart.Get)
		api.POST("/cart/add", cart.Add)
		api.PUT("/cart/quantity", cart.UpdateQuantity)
		api.DELETE("/cart/:productId", cart.Remove)
		api.DELETE("/cart", cart.Clear)
		api.GET("/cart/ws", cartWS.Sync)

		api.POST("/checkout", orders.Checkout)
		api.GET("/track", orders.Track)
		api.GET("/orders/:id", orders.GetByID)
		api.GET("/orders/:id/qr", orders.TrackingQR)
		api.POST("/orders/:id/advance", orders.Advance)
		api.POST("/orders/:id/cancel", orders.Cancel)

		api.POST("/contact",
			middleware.FormRateLimit(deps.Redis, "contact", middleware.ContactMaxAttempts),
			contact.Contact)
		api.POST("/feedback",
			middleware.FormRateLimit(deps.Redis, "feedback", middleware.FeedbackMaxAttempts),
			contact.SubmitFeedback)
		api.GET("/testimonials", contact.Testimonials)

		api.GET("/analytics/dashboard", analytics.Dashboard)
	}
}

func corsConfig() gin.HandlerFunc {
	origin := os.Getenv("FRONTEND_URL")
	if origin == "" {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
