package middleware

import (
	"github.com/gin-gonic/gin"

	"qa-board-sync/pkg/response"
)

// UserIDKey is the gin context key holding the acting user's id.
const UserIDKey = "user_id"

// UserIDHeader carries the caller identity. Session authentication is
// handled upstream of this service; the header is trusted as-is.
const UserIDHeader = "X-User-ID"

// Identify stores the caller's user id in the request context when present.
func (mw Middleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := c.GetHeader(UserIDHeader); uid != "" {
			c.Set(UserIDKey, uid)
		}
		c.Next()
	}
}

// RequireUser rejects requests that carry no user identity.
func (mw Middleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader(UserIDHeader)
		if uid == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(UserIDKey, uid)
		c.Next()
	}
}

// UserID reads the acting user's id from the gin context.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
