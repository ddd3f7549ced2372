package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// Carts are scoped to an anonymous device session, mirroring the one-cart-
// per-device behaviour of the storefront. 30 days, same as the snapshot TTL.
const sessionMaxAge = 30 * 24 * 60 * 60

// EnsureSession mints a session id cookie when the request has none and puts
// the id in the gin context under "session_id".
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set("session_id", id)
		c.Next()
	}
}
