package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/ports"
)

// JobFilter narrows the public job list.
type JobFilter struct {
	Search string
	// Type is a job type or domain.JobTypeAll. Empty means all.
	Type string
}

// JobBoard serves the public pages: the job list, job detail and the
// application form. None of them need a session.
type JobBoard struct {
	jobs ports.JobsAPI
	apps ports.ApplicationsAPI
	log  zerolog.Logger
}

func NewJobBoard(jobs ports.JobsAPI, apps ports.ApplicationsAPI, log zerolog.Logger) *JobBoard {
	return &JobBoard{jobs: jobs, apps: apps, log: log}
}

// ListJobs returns the active jobs matching filter, in API order.
func (b *JobBoard) ListJobs(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	all, err := b.jobs.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Job, 0, len(all))
	for _, j := range all {
		if !j.IsActive {
			continue
		}
		if !matchesType(j, filter.Type) {
			continue
		}
		if search != "" && !containsAny(search, j.Title, j.Department, j.Location) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

// GetJob returns a single job by id.
func (b *JobBoard) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := b.jobs.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	return job, nil
}

// Apply submits an application form. Field validation happens at the edge.
func (b *JobBoard) Apply(ctx context.Context, form domain.ApplicationForm) (*domain.Application, error) {
	app, err := b.apps.Apply(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("apply for job %s: %w", form.JobID, err)
	}
	b.log.Info().Str("job_id", form.JobID).Msg("application submitted")
	return app, nil
}

func matchesType(j domain.Job, want string) bool {
	if want == "" || want == domain.JobTypeAll {
		return true
	}
	return j.JobType == want
}

// containsAny reports whether any field contains needle, case-insensitively.
// needle must already be lower case.
func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
