package middleware

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"interview-coach/internal/api/errors"
)

// ErrorHandler recovers from panics in handlers and answers with the
// standard error body
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}

		logger.Error("Recovered from panic",
			"error", err.Error(),
			"request_id", c.GetString(RequestIDKey),
			"session_id", c.GetString(SessionIDKey),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)

		HandleError(c, err)
	})
}

// HandleError writes err as an APIError and aborts the request. Internal
// errors are attached to the context so the request log carries them.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromError(err)
	apiErr.RequestID = c.GetString(RequestIDKey)
	if apiErr.Kind == errors.KindInternal {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
