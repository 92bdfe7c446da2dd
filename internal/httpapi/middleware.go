package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	headerUserID    = "X-User-ID"
	headerSessionID = "X-Session-ID"
)

// RequestID assigns a request ID when the caller did not send one and
// echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func AccessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", c.GetString("request_id")),
		)
	}
}

// userID is the identity asserted by the fronting auth proxy. The service
// itself performs no credential checks; authentication is external.
func userID(c *gin.Context) string {
	return c.GetHeader(headerUserID)
}

// sessionID scopes the cart. It falls back to the user ID so an
// authenticated caller without an explicit session header still gets a cart
// of their own rather than a shared one.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader(headerSessionID); sid != "" {
		return sid
	}
	return userID(c)
}
