package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/core/domain"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{ID: "1", Title: "Backend Engineer", Department: "IT", Location: "Addis Ababa", JobType: domain.JobTypeFullTime, IsActive: true},
		{ID: "2", Title: "Accountant", Department: "Finance", Location: "Adama", JobType: domain.JobTypeContract, IsActive: true},
		{ID: "3", Title: "Closed Role", Department: "IT", Location: "Remote", JobType: domain.JobTypeRemote, IsActive: false},
		{ID: "4", Title: "Support", Department: "Operations", Location: "Bahir Dar", IsActive: true},
	}
}

func ids(jobs []domain.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestJobBoard_ListJobs(t *testing.T) {
	jobsAPI := &stubJobsAPI{listFn: func(context.Context) ([]domain.Job, error) { return sampleJobs(), nil }}
	board := NewJobBoard(jobsAPI, &stubApplicationsAPI{}, zerolog.Nop())

	cases := []struct {
		name   string
		filter JobFilter
		want   []string
	}{
		{"active only", JobFilter{}, []string{"1", "2", "4"}},
		{"all type", JobFilter{Type: domain.JobTypeAll}, []string{"1", "2", "4"}},
		{"type", JobFilter{Type: domain.JobTypeContract}, []string{"2"}},
		{"search title", JobFilter{Search: "ENGINEER"}, []string{"1"}},
		{"search department", JobFilter{Search: "it"}, []string{"1"}},
		{"search location", JobFilter{Search: "adama"}, []string{"2"}},
		{"inactive hidden from search", JobFilter{Search: "closed"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := board.ListJobs(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, gotIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, gotIDs)
				}
			}
		})
	}
}

func TestJobBoard_ListJobs_Error(t *testing.T) {
	jobsAPI := &stubJobsAPI{listFn: func(context.Context) ([]domain.Job, error) {
		return nil, &domain.RemoteError{Status: http.StatusServiceUnavailable}
	}}
	board := NewJobBoard(jobsAPI, &stubApplicationsAPI{}, zerolog.Nop())

	_, err := board.ListJobs(context.Background(), JobFilter{})
	if !errors.As(err, new(*domain.RemoteError)) {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
}

func TestJobBoard_GetJob_NotFound(t *testing.T) {
	jobsAPI := &stubJobsAPI{getFn: func(context.Context, string) (*domain.Job, error) {
		return nil, &domain.RemoteError{Status: http.StatusNotFound, Message: "Job not found"}
	}}
	board := NewJobBoard(jobsAPI, &stubApplicationsAPI{}, zerolog.Nop())

	_, err := board.GetJob(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobBoard_Apply(t *testing.T) {
	apps := &stubApplicationsAPI{applyFn: func(_ context.Context, form domain.ApplicationForm) (*domain.Application, error) {
		if form.JobID != "1" || form.GPA != 3.5 {
			t.Fatalf("unexpected form: %+v", form)
		}
		return &domain.Application{ID: "a1", Status: domain.ApplicationPending}, nil
	}}
	board := NewJobBoard(&stubJobsAPI{}, apps, zerolog.Nop())

	app, err := board.Apply(context.Background(), domain.ApplicationForm{JobID: "1", ApplicantName: "Abebe", GPA: 3.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.ID != "a1" || app.Status != domain.ApplicationPending {
		t.Fatalf("unexpected application: %+v", app)
	}
}
