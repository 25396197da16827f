// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session resolves the storefront session for the request. The session ID
// comes from the X-Session-ID header or cookie; a new one is issued when
// absent and echoed back so the client can keep it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			if cookie, err := c.Cookie("session_id"); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(sessionContextKey, sessionID)
		c.Header("X-Session-ID", sessionID)
		c.Next()
	}
}

// GetSessionID returns the session ID resolved for this request
func GetSessionID(c *gin.Context) string {
	if id, ok := c.Get(sessionContextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
