package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

// StatusOf maps an error to a gateway status code and a client-safe message.
// known is false for errors nothing maps; those should be logged.
func StatusOf(err error) (code int, msg string, known bool) {
	var re *domain.RemoteError
	if errors.As(err, &re) {
		msg := re.Message
		switch re.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound,
			http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			if msg == "" {
				msg = http.StatusText(re.Status)
			}
			return re.Status, msg, true
		}
		if msg == "" {
			msg = "remote api error"
		}
		return http.StatusBadGateway, msg, true
	}

	switch {
	case errors.Is(err, domain.ErrSessionLoading):
		return http.StatusServiceUnavailable, "session loading", true
	case errors.Is(err, domain.ErrInvalidForm):
		return http.StatusUnprocessableEntity, err.Error(), true
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "not authenticated", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found", true
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "remote api timeout", true
	}
	return http.StatusInternalServerError, "internal server error", false
}

// renderResult writes a page fetch result. A failed fetch keeps the uniform
// {status, data, error} body under the mapped status code.
func renderResult[T any](c echo.Context, r service.Result[T]) error {
	if r.OK() {
		return c.JSON(http.StatusOK, r)
	}
	code, _, known := StatusOf(r.Err)
	if !known {
		code = http.StatusBadGateway
	}
	return c.JSON(code, r)
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
