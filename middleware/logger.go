package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// Logger tags each request with an id (the caller's X-Request-ID when
// given) and logs one line when it completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		icon := "➡️"
		switch {
		case status >= 500:
			icon = "❌"
		case status >= 400:
			icon = "⚠️"
		}
		log.Printf("%s [%s] %s %s %s %d %s",
			icon, id, c.Request.Method, c.Request.URL.Path, c.ClientIP(), status, time.Since(start))
	}
}

// RequestID returns the id Logger assigned to the request.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
