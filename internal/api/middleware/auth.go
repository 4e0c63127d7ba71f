package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

// sessionKey is where the gating middleware leaves the view it checked.
const sessionKey = "session"

// SessionReady rejects requests until the initial identity check has
// completed. Handlers behind it may rely on the session view being settled.
func SessionReady(ready <-chan struct{}) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			select {
			case <-ready:
				return next(c)
			default:
				return domain.ErrSessionLoading
			}
		}
	}
}

// Auth requires a settled, authenticated session and stores its view in the
// echo context.
func Auth(session service.SessionViewer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := session.View()
			if err := service.RequireRole(v); err != nil {
				return err
			}
			c.Set(sessionKey, v)
			return next(c)
		}
	}
}

// SessionView returns the view stored by Auth.
func SessionView(c echo.Context) (domain.SessionView, bool) {
	v, ok := c.Get(sessionKey).(domain.SessionView)
	return v, ok
}
