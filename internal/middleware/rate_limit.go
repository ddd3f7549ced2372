package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Limits for the public form endpoints
	ContactMaxAttempts  = 5
	FeedbackMaxAttempts = 5

	FormCooldown = 10 * time.Minute
)

// FormRateLimit limits submissions per client IP using a Redis counter. The
// first request in a window sets the expiry; exceeding the limit returns 429
// with the remaining cooldown. A nil client disables the limiter.
func FormRateLimit(rdb *redis.Client, name string, maxAttempts int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := fmt.Sprintf("form_rl:%s:%s", name, c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis down: let the request through rather than blocking forms
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, FormCooldown)
		}

		if count > int64(maxAttempts) {
			ttl := rdb.TTL(ctx, key).Val()
			minutes := int(ttl.Minutes()) + 1
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Too many submissions. Try again in %d minutes", minutes),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
