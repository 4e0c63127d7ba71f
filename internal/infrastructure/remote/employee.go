package remote

import (
	"context"
	"net/http"

	"github.com/jobportal/portal/internal/core/domain"
)

type photoRequest struct {
	Photo string `json:"photo"`
}

func (c *Client) GetEmployeeProfile(ctx context.Context) (domain.EmployeeProfile, error) {
	var p domain.EmployeeProfile
	err := c.do(ctx, call{method: http.MethodGet, route: "/employee/profile", path: "/employee/profile"}, &p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UploadPhoto sends the ID photo as a data URL or remote URL.
func (c *Client) UploadPhoto(ctx context.Context, photo string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		route:  "/employee/photo",
		path:   "/employee/photo",
		body:   photoRequest{Photo: photo},
	}, nil)
}
