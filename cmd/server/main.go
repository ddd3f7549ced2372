package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"progas_back_end/internal/catalog"
	"progas_back_end/internal/config"
	"progas_back_end/internal/database"
	"progas_back_end/internal/routes"
	"progas_back_end/internal/storage"
	"progas_back_end/internal/store"
)

func main() {
	config.Load()

	rdb := database.ConnectRedis()
	kv := storage.NewRedisKV(rdb)

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("❌ Failed to load product catalog:", err)
	}
	log.Printf("✅ Product catalog loaded (%d products)", len(cat.List()))

	seed, err := store.SeedOrders()
	if err != nil {
		log.Fatal("❌ Failed to load order seed:", err)
	}
	orders := store.NewOrderStore(seed)
	log.Printf("✅ Order store seeded (%d orders)", len(orders.Orders()))

	feedback := store.NewFeedbackStore(store.SeedTestimonials())

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		KV:       kv,
		Redis:    rdb,
		Catalog:  cat,
		Orders:   orders,
		Feedback: feedback,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 ProGas storefront backend listening on port", port)
	r.Run(":" + port)
}
