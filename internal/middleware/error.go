package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dermaconnect/derma-api/pkg/apperror"
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into a
// single JSON error response. Application errors carry their own
// status code; anything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)

		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("request error")
		}

		lastErr := c.Errors.Last().Err
		status := apperror.StatusOf(lastErr)
		code := apperror.CodeOf(lastErr)

		message := lastErr.Error()
		if status == http.StatusInternalServerError {
			// Never leak internal details to clients.
			message = "internal server error"
		}

		c.JSON(status, ErrorResponse{
			Code:    string(code),
			Message: message,
			TraceID: requestID,
		})
	}
}
