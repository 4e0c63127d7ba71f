package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/infrastructure/remote"
)

// RequestID reuses the caller's X-Request-Id or mints one, echoes it back and
// forwards it on every remote API call the request makes.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(remote.RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(remote.RequestIDHeader, id)

			req := c.Request()
			c.SetRequest(req.WithContext(remote.WithRequestID(req.Context(), id)))
			return next(c)
		}
	}
}
