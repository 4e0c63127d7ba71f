package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
)

// SessionService is the part of the session manager the gateway drives.
type SessionService interface {
	View() domain.SessionView
	Login(ctx context.Context, username, password string) domain.LoginResult
	Logout(ctx context.Context)
	Recheck(ctx context.Context)
}

type SessionHandler struct {
	session SessionService
}

func NewSessionHandler(session SessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

// Get returns the current session view.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session.View())
}

// Login exchanges credentials for a session.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      422   {object}  map[string]string
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.session.Login(c.Request().Context(), req.Username, req.Password)
	if !res.Success {
		return c.JSON(http.StatusUnauthorized, res)
	}
	return c.JSON(http.StatusOK, res)
}

// Logout forgets the session. Always succeeds.
//
// @Summary      Logout
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	return c.JSON(http.StatusOK, h.session.View())
}

// Refresh re-validates the stored token against the remote API.
//
// @Summary      Re-check the stored token
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /session/refresh [post]
func (h *SessionHandler) Refresh(c echo.Context) error {
	h.session.Recheck(c.Request().Context())
	return c.JSON(http.StatusOK, h.session.View())
}
