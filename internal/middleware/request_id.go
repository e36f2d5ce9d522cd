package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header carrying the correlation id.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the echo context key the id is stored under.
	RequestIDKey = "request_id"
)

// RequestID returns an echo middleware that guarantees each request a
// correlation id: an incoming X-Request-ID is reused, otherwise a
// fresh UUID is generated. The id is stored in the echo context and
// echoed back on the response so clients can report it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)

			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

// GetRequestID retrieves the request id from the echo context, empty
// when RequestID did not run.
func GetRequestID(c echo.Context) string {
	if requestID, ok := c.Get(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
