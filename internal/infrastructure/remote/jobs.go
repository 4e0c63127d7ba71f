package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jobportal/portal/internal/core/domain"
)

func jobPath(id string) string {
	return "/jobs/" + url.PathEscape(id)
}

func (c *Client) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, call{method: http.MethodGet, route: "/jobs", path: "/jobs"}, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	err := c.do(ctx, call{method: http.MethodGet, route: "/jobs/{id}", path: jobPath(id)}, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	var job domain.Job
	err := c.do(ctx, call{method: http.MethodPost, route: "/jobs", path: "/jobs", body: in}, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error) {
	var job domain.Job
	err := c.do(ctx, call{method: http.MethodPut, route: "/jobs/{id}", path: jobPath(id), body: in}, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SetJobActive sends a partial update carrying only isActive.
func (c *Client) SetJobActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.do(ctx, call{method: http.MethodPut, route: "/jobs/{id}", path: jobPath(id), body: body}, nil)
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, route: "/jobs/{id}", path: jobPath(id)}, nil)
}
