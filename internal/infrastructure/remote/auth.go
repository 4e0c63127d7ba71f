package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jobportal/portal/internal/core/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Me resolves the user behind token.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/auth/me",
		path:   "/auth/me",
		auth:   explicit,
		token:  token,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Login posts credentials. The API answers with the user record and the
// token side by side; the token is split off the returned user.
func (c *Client) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	var u domain.User
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/auth/login",
		path:   "/auth/login",
		body:   loginRequest{Username: username, Password: password},
		auth:   anonymous,
	}, &u)
	if err != nil {
		return "", nil, err
	}

	raw, ok := u.Extra[domain.TokenKey]
	if !ok {
		return "", nil, errors.New("login response carries no token")
	}
	delete(u.Extra, domain.TokenKey)
	if len(u.Extra) == 0 {
		u.Extra = nil
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return "", nil, errors.New("login response token is not a string")
	}
	return token, &u, nil
}
