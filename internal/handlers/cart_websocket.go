package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"progas_back_end/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins, tightened by CORS at the route layer
		return true
	},
}

type CartWSHandler struct {
	Redis *redis.Client
}

// Sync pushes the session's cart to the client whenever it changes. The cart
// store publishes "updated"/"cleared" on the cart key's channel after every
// mutation; this handler re-reads the snapshot and forwards the full state.
func (h *CartWSHandler) Sync(c *gin.Context) {
	if h.Redis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live sync unavailable"})
		return
	}

	sessionID := c.GetString("session_id")
	key := "cart:" + sessionID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()
	pubsub := h.Redis.Subscribe(ctx, key)
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "cart sync active",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}
			if err := conn.WriteJSON(h.cartState(ctx, key)); err != nil {
				log.Printf("❌ WebSocket write error: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Keepalive ping
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *CartWSHandler) cartState(ctx context.Context, key string) gin.H {
	data, err := h.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return gin.H{"type": "cart_updated", "items": []models.CartLine{}, "total": 0, "count": 0}
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return gin.H{"type": "cart_updated", "items": []models.CartLine{}, "total": 0, "count": 0}
	}

	total := 0.0
	count := 0
	for _, l := range lines {
		total += l.Subtotal()
		count += l.Quantity
	}
	return gin.H{"type": "cart_updated", "items": lines, "total": total, "count": count}
}
