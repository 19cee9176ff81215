package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key of the request id
	RequestIDKey = "request_id"
	// SessionIDKey is set by interview handlers so request logs can be joined
	// with the orchestrator's session logs
	SessionIDKey = "session_id"

	maxRequestIDLength = 64
)

// RequestID adopts the caller's X-Request-ID when it is usable and mints a
// new one otherwise
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// TagSession records which interview session a request touches
func TagSession(c *gin.Context, sessionID string) {
	if sessionID != "" {
		c.Set(SessionIDKey, sessionID)
	}
}

func keyString(keys map[string]any, key string) string {
	if v, ok := keys[key].(string); ok {
		return v
	}
	return ""
}
