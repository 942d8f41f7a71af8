package middleware

import (
	"github.com/torxlabs/go-treasury/internal/common/ctxdata"

	"github.com/labstack/echo/v4"
)

// Context seeds the request context with a correlation id, either the
// caller's or a fresh one, so every downstream log line carries it.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := ctxdata.SetContextFromHTTP(req.Context(), req)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
