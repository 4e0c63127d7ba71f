package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/core/domain"
)

func newAdmin(jobs *stubJobsAPI, apps *stubApplicationsAPI, users *stubUsersAPI) *AdminService {
	return NewAdminService(viewerFor(domain.RoleAdmin), jobs, apps, users, zerolog.Nop())
}

func sampleApplications() []domain.Application {
	return []domain.Application{
		{ID: "a1", ApplicantName: "Abebe Kebede", Email: "abebe@example.com", Status: domain.ApplicationPending, Job: &domain.JobRef{Title: "Backend Engineer"}},
		{ID: "a2", ApplicantName: "Sara", Email: "sara@example.com", Status: domain.ApplicationApproved, ExitExam: "Passed"},
		{ID: "a3", ApplicantName: "Dawit", Email: "dawit@example.com", Status: domain.ApplicationRejected},
		{ID: "a4", ApplicantName: "Hana", Email: "hana@example.com", Status: domain.ApplicationPending},
		{ID: "a5", ApplicantName: "Liya", Email: "liya@example.com", Status: domain.ApplicationPending},
		{ID: "a6", ApplicantName: "Yonas", Email: "yonas@example.com", Status: domain.ApplicationApproved},
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	jobs := &stubJobsAPI{listFn: func(context.Context) ([]domain.Job, error) { return sampleJobs(), nil }}
	apps := &stubApplicationsAPI{listFn: func(context.Context) ([]domain.Application, error) { return sampleApplications(), nil }}
	svc := newAdmin(jobs, apps, &stubUsersAPI{})

	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DashboardStats{TotalJobs: 4, TotalApplications: 6, PendingReviews: 3, Approved: 2, Rejected: 1}
	if d.Stats != want {
		t.Fatalf("expected %+v, got %+v", want, d.Stats)
	}
	if len(d.RecentApplications) != 5 || d.RecentApplications[0].ID != "a1" {
		t.Fatalf("expected first five applications, got %d", len(d.RecentApplications))
	}
}

func TestAdminService_Dashboard_EitherFailureFails(t *testing.T) {
	jobs := &stubJobsAPI{listFn: func(context.Context) ([]domain.Job, error) { return sampleJobs(), nil }}
	apps := &stubApplicationsAPI{listFn: func(context.Context) ([]domain.Application, error) {
		return nil, &domain.RemoteError{Status: http.StatusInternalServerError}
	}}
	svc := newAdmin(jobs, apps, &stubUsersAPI{})

	if _, err := svc.Dashboard(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	svc := NewAdminService(viewerFor(domain.RoleApplicant), &stubJobsAPI{}, &stubApplicationsAPI{}, &stubUsersAPI{}, zerolog.Nop())

	if _, err := svc.Dashboard(context.Background()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteJob(context.Background(), "1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	loading := NewAdminService(fixedViewer{view: domain.NewSessionView(nil, true)},
		&stubJobsAPI{}, &stubApplicationsAPI{}, &stubUsersAPI{}, zerolog.Nop())
	if _, err := loading.ListJobs(context.Background(), ""); !errors.Is(err, domain.ErrSessionLoading) {
		t.Fatalf("expected ErrSessionLoading, got %v", err)
	}
}

func TestAdminService_ListJobs_IncludesInactive(t *testing.T) {
	jobs := &stubJobsAPI{listFn: func(context.Context) ([]domain.Job, error) { return sampleJobs(), nil }}
	svc := newAdmin(jobs, &stubApplicationsAPI{}, &stubUsersAPI{})

	all, err := svc.ListJobs(context.Background(), "")
	if err != nil || len(all) != 4 {
		t.Fatalf("expected all 4 jobs, got %d (%v)", len(all), err)
	}
	it, _ := svc.ListJobs(context.Background(), "it")
	if len(it) != 2 {
		t.Fatalf("expected 2 IT jobs, got %v", ids(it))
	}
}

func TestAdminService_ToggleJob(t *testing.T) {
	var sent *bool
	jobs := &stubJobsAPI{
		getFn: func(context.Context, string) (*domain.Job, error) {
			return &domain.Job{ID: "1", IsActive: true}, nil
		},
		activeFn: func(_ context.Context, id string, active bool) error {
			sent = &active
			return nil
		},
	}
	svc := newAdmin(jobs, &stubApplicationsAPI{}, &stubUsersAPI{})

	active, err := svc.ToggleJob(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active || sent == nil || *sent {
		t.Fatalf("expected job deactivated, got active=%v sent=%v", active, sent)
	}
}

func TestAdminService_ListApplications_Filters(t *testing.T) {
	apps := &stubApplicationsAPI{listFn: func(context.Context) ([]domain.Application, error) { return sampleApplications(), nil }}
	svc := newAdmin(&stubJobsAPI{}, apps, &stubUsersAPI{})

	cases := []struct {
		name   string
		filter ApplicationFilter
		want   int
	}{
		{"all", ApplicationFilter{Status: "all"}, 6},
		{"pending", ApplicationFilter{Status: "pending"}, 3},
		{"by job title", ApplicationFilter{Search: "backend"}, 1},
		{"by exit exam", ApplicationFilter{Search: "passed"}, 1},
		{"by email and status", ApplicationFilter{Search: "example.com", Status: "approved"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ListApplications(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, len(got))
			}
		})
	}
}

func TestAdminService_ReviewApplication(t *testing.T) {
	var got domain.ApplicationStatus
	apps := &stubApplicationsAPI{reviewFn: func(_ context.Context, id string, decision domain.ApplicationStatus) error {
		got = decision
		return nil
	}}
	svc := newAdmin(&stubJobsAPI{}, apps, &stubUsersAPI{})

	if err := svc.ReviewApplication(context.Background(), "a1", domain.ApplicationRejected); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != domain.ApplicationRejected {
		t.Fatalf("expected reject, got %q", got)
	}
	if err := svc.ReviewApplication(context.Background(), "a1", domain.ApplicationPending); err == nil {
		t.Fatalf("pending is not a decision")
	}
}

func TestAdminService_ListUsers_FallsBack(t *testing.T) {
	users := &stubUsersAPI{
		allFn: func(context.Context) ([]domain.User, error) {
			return nil, &domain.RemoteError{Status: http.StatusNotFound}
		},
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "1", Name: "Root", Role: domain.RoleAdmin},
				{ID: "2", Name: "Hana", Role: domain.RoleApplicant, FaydaID: "FAY-22"},
			}, nil
		},
	}
	svc := newAdmin(&stubJobsAPI{}, &stubApplicationsAPI{}, users)

	all, err := svc.ListUsers(context.Background(), UserFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("expected fallback list, got %d (%v)", len(all), err)
	}
	applicants, _ := svc.ListUsers(context.Background(), UserFilter{Role: "applicant"})
	if len(applicants) != 1 || applicants[0].ID != "2" {
		t.Fatalf("unexpected role filter result: %+v", applicants)
	}
	byFayda, _ := svc.ListUsers(context.Background(), UserFilter{Search: "fay-22"})
	if len(byFayda) != 1 {
		t.Fatalf("expected search on fayda id")
	}
}

func TestAdminService_ListUsers_OtherErrorsDoNotFallBack(t *testing.T) {
	users := &stubUsersAPI{
		allFn: func(context.Context) ([]domain.User, error) {
			return nil, &domain.RemoteError{Status: http.StatusForbidden}
		},
		listFn: func(context.Context) ([]domain.User, error) {
			t.Fatalf("must not fall back on 403")
			return nil, nil
		},
	}
	svc := newAdmin(&stubJobsAPI{}, &stubApplicationsAPI{}, users)

	if _, err := svc.ListUsers(context.Background(), UserFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAdminService_ListIDApprovals(t *testing.T) {
	users := &stubUsersAPI{listFn: func(context.Context) ([]domain.User, error) {
		return []domain.User{
			{ID: "1", Role: domain.RoleAdmin, IDPhoto: "x", IDStatus: domain.IDStatusPending},
			{ID: "2", Role: domain.RoleApplicant, Name: "Hana", IDPhoto: "data:img", IDStatus: domain.IDStatusPending},
			{ID: "3", Role: domain.RoleApplicant, Name: "Sara"},
			{ID: "4", Role: domain.RoleApplicant, Name: "Liya", Username: "hana99", IDPhoto: "data:img", IDStatus: domain.IDStatusActive, IDNumber: "ID-0042"},
			{ID: "5", Role: domain.RoleApplicant, Name: "Meron", Email: "meron@example.com", IDPhoto: "data:img", IDStatus: domain.IDStatusRejected},
		}, nil
	}}
	svc := newAdmin(&stubJobsAPI{}, &stubApplicationsAPI{}, users)
	ctx := context.Background()

	got, err := svc.ListIDApprovals(ctx, IDApprovalFilter{})
	if err != nil || len(got.Users) != 3 {
		t.Fatalf("expected three applicants with photos, got %+v (%v)", got, err)
	}
	want := IDStatusCounts{Total: 3, Pending: 1, Active: 1, Rejected: 1}
	if got.Counts != want {
		t.Fatalf("unexpected counts: %+v", got.Counts)
	}

	cases := []struct {
		name   string
		filter IDApprovalFilter
		ids    []string
	}{
		{"by name", IDApprovalFilter{Search: "liya"}, []string{"4"}},
		{"by id number", IDApprovalFilter{Search: "id-0042"}, []string{"4"}},
		{"by email", IDApprovalFilter{Search: "MERON@"}, []string{"5"}},
		{"username is not searched", IDApprovalFilter{Search: "hana99"}, nil},
		{"status pending", IDApprovalFilter{Status: "pending"}, []string{"2"}},
		{"status all", IDApprovalFilter{Status: "all"}, []string{"2", "4", "5"}},
		{"status and search", IDApprovalFilter{Status: "active", Search: "hana"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.ListIDApprovals(ctx, tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Users) != len(tc.ids) {
				t.Fatalf("expected %v, got %+v", tc.ids, res.Users)
			}
			for i, u := range res.Users {
				if u.ID != tc.ids[i] {
					t.Fatalf("expected %v, got %+v", tc.ids, res.Users)
				}
			}
			if res.Counts != want {
				t.Fatalf("counts must ignore the filter, got %+v", res.Counts)
			}
		})
	}
}

func TestAdminService_ReviewID(t *testing.T) {
	users := &stubUsersAPI{reviewFn: func(_ context.Context, id string, approve bool) (*domain.User, error) {
		if !approve {
			t.Fatalf("expected approve")
		}
		return &domain.User{ID: id, IDStatus: domain.IDStatusActive, IDNumber: "ID-0001"}, nil
	}}
	svc := newAdmin(&stubJobsAPI{}, &stubApplicationsAPI{}, users)

	u, err := svc.ReviewID(context.Background(), "2", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.IDStatus != domain.IDStatusActive || u.IDNumber != "ID-0001" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
