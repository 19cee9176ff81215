package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

var quietPaths = []string{"/health", "/metrics"}

// StructuredLogging writes one slog record per request. Client errors are
// logged at warn and server errors at error.
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if lo.Contains(quietPaths, param.Path) {
			return ""
		}

		level := slog.LevelInfo
		switch {
		case param.StatusCode >= 500:
			level = slog.LevelError
		case param.StatusCode >= 400:
			level = slog.LevelWarn
		}

		logger.Log(param.Request.Context(), level, "HTTP Request",
			"request_id", keyString(param.Keys, RequestIDKey),
			"session_id", keyString(param.Keys, SessionIDKey),
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"client_ip", param.ClientIP,
			"body_size", param.BodySize,
			"error", param.ErrorMessage,
		)

		return ""
	})
}
