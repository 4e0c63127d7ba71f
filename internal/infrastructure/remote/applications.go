package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jobportal/portal/internal/core/domain"
)

// Apply submits an application. The endpoint is public.
func (c *Client) Apply(ctx context.Context, form domain.ApplicationForm) (*domain.Application, error) {
	var app domain.Application
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/applications/apply",
		path:   "/applications/apply",
		body:   form,
		auth:   anonymous,
	}, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications returns the applications visible to the caller: all of
// them for an admin, the caller's own for an applicant.
func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	err := c.do(ctx, call{method: http.MethodGet, route: "/applications", path: "/applications"}, &apps)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) ReviewApplication(ctx context.Context, id string, decision domain.ApplicationStatus) error {
	var action string
	switch decision {
	case domain.ApplicationApproved:
		action = "approve"
	case domain.ApplicationRejected:
		action = "reject"
	default:
		return fmt.Errorf("review application: unsupported decision %q", decision)
	}
	return c.do(ctx, call{
		method: http.MethodPut,
		route:  "/applications/{id}/" + action,
		path:   "/applications/" + url.PathEscape(id) + "/" + action,
	}, nil)
}
