package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

// RBAC enforces role-based access control against the view stored by Auth.
// Without a stored view it reads the session directly.
func RBAC(session service.SessionViewer, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, ok := SessionView(c)
			if !ok {
				v = session.View()
			}
			if err := service.RequireRole(v, allowedRoles...); err != nil {
				return err
			}
			return next(c)
		}
	}
}
