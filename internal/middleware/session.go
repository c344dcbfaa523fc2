package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "portfolio_session"
	sessionMaxAge = 30 * 24 * time.Hour
	sessionCtxKey = "session_id"
)

// WithSession ensures every request carries a session id, minting a cookie
// for first-time clients. The id keys server-side session state; it carries
// no identity itself.
func WithSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.New().String()
			c.SetCookie(sessionCookie, sid, int(sessionMaxAge.Seconds()), "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)
		c.Next()
	}
}

// SessionID returns the session id established by WithSession.
func SessionID(c *gin.Context) string {
	if value, ok := c.Get(sessionCtxKey); ok {
		if sid, ok := value.(string); ok {
			return sid
		}
	}
	return ""
}
