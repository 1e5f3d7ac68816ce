package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds the response headers expected of a JSON-only API
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			h.Set("Referrer-Policy", "no-referrer")

			// Projections and catch-up results depend on the current date
			h.Set("Cache-Control", "no-store")

			return next(c)
		}
	}
}
