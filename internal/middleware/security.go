package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to every API response
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			header.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			header.Set("Referrer-Policy", "no-referrer")

			// Ledger data must not be cached by intermediaries
			header.Set("Cache-Control", "no-store")

			return next(c)
		}
	}
}
