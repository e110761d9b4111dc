package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header (and Pub/Sub attribute source) for the request ID.
const HeaderXRequestID = "X-Request-Id"

// SetRequestID stores the request ID on the echo context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID stored on the echo context, or the
// one on the request context when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := lookup[string](ctx, KeyRequestID)

	return id
}
