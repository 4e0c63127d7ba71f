package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jobportal/portal/internal/core/domain"
)

func (c *Client) GetProfile(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, call{method: http.MethodGet, route: "/users/profile", path: "/users/profile"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	var u domain.User
	err := c.do(ctx, call{method: http.MethodPut, route: "/users/profile", path: "/users/profile", body: in}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	return c.listUsers(ctx, "/users/all")
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	return c.listUsers(ctx, "/users")
}

func (c *Client) listUsers(ctx context.Context, path string) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, call{method: http.MethodGet, route: path, path: path}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ReviewID(ctx context.Context, userID string, approve bool) (*domain.User, error) {
	action := "id-reject"
	if approve {
		action = "id-approve"
	}
	var u domain.User
	err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/users/{id}/" + action,
		path:   "/users/" + url.PathEscape(userID) + "/" + action,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
