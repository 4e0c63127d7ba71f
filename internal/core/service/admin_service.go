package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/ports"
)

const recentApplicationsLimit = 5

// DashboardStats are the counters on the admin dashboard.
type DashboardStats struct {
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
	PendingReviews    int `json:"pendingReviews"`
	Approved          int `json:"approved"`
	Rejected          int `json:"rejected"`
}

// AdminDashboard is the admin landing page.
type AdminDashboard struct {
	Stats              DashboardStats       `json:"stats"`
	RecentApplications []domain.Application `json:"recentApplications"`
}

// ApplicationFilter narrows the admin application list.
type ApplicationFilter struct {
	Search string
	// Status is an application status or "all". Empty means all.
	Status string
}

// UserFilter narrows the admin user list.
type UserFilter struct {
	Search string
	// Role is a role or "all". Empty means all.
	Role string
}

// IDApprovalFilter narrows the ID approval queue.
type IDApprovalFilter struct {
	Search string
	// Status is an ID status or "all". Empty means all.
	Status string
}

// IDStatusCounts tallies every submitted ID card, regardless of the filter.
type IDStatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Active   int `json:"active"`
	Rejected int `json:"rejected"`
}

// IDApprovals is the ID approval page: the counters and the filtered queue.
type IDApprovals struct {
	Counts IDStatusCounts `json:"counts"`
	Users  []domain.User  `json:"users"`
}

// AdminService backs the admin console. Every operation requires an admin
// session.
type AdminService struct {
	session SessionViewer
	jobs    ports.JobsAPI
	apps    ports.ApplicationsAPI
	users   ports.UsersAPI
	log     zerolog.Logger
}

func NewAdminService(
	session SessionViewer,
	jobs ports.JobsAPI,
	apps ports.ApplicationsAPI,
	users ports.UsersAPI,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{session: session, jobs: jobs, apps: apps, users: users, log: log}
}

func (s *AdminService) guard() error {
	return RequireRole(s.session.View(), domain.RoleAdmin)
}

// Dashboard fetches jobs and applications concurrently and derives the stats.
// Both fetches must succeed.
func (s *AdminService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	var (
		jobs []domain.Job
		apps []domain.Application
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = s.jobs.ListJobs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = s.apps.ListApplications(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	d := &AdminDashboard{
		Stats: DashboardStats{
			TotalJobs:         len(jobs),
			TotalApplications: len(apps),
		},
	}
	for _, a := range apps {
		switch a.Status {
		case domain.ApplicationPending:
			d.Stats.PendingReviews++
		case domain.ApplicationApproved:
			d.Stats.Approved++
		case domain.ApplicationRejected:
			d.Stats.Rejected++
		}
	}
	recent := apps
	if len(recent) > recentApplicationsLimit {
		recent = recent[:recentApplicationsLimit]
	}
	d.RecentApplications = recent
	return d, nil
}

// --- Jobs ---

// ListJobs returns every job, active or not, matching search on title or
// department.
func (s *AdminService) ListJobs(ctx context.Context, search string) ([]domain.Job, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	all, err := s.jobs.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return all, nil
	}
	out := make([]domain.Job, 0, len(all))
	for _, j := range all {
		if containsAny(needle, j.Title, j.Department) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *AdminService) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	job, err := s.jobs.CreateJob(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	s.log.Info().Str("job_id", job.ID).Str("title", job.Title).Msg("job created")
	return job, nil
}

func (s *AdminService) UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	job, err := s.jobs.UpdateJob(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update job %s: %w", id, err)
	}
	return job, nil
}

// ToggleJob flips a job's active flag and returns the new value.
func (s *AdminService) ToggleJob(ctx context.Context, id string) (bool, error) {
	if err := s.guard(); err != nil {
		return false, err
	}
	job, err := s.jobs.GetJob(ctx, id)
	if err != nil {
		return false, fmt.Errorf("toggle job %s: %w", id, err)
	}
	active := !job.IsActive
	if err := s.jobs.SetJobActive(ctx, id, active); err != nil {
		return false, fmt.Errorf("toggle job %s: %w", id, err)
	}
	s.log.Info().Str("job_id", id).Bool("active", active).Msg("job toggled")
	return active, nil
}

func (s *AdminService) DeleteJob(ctx context.Context, id string) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.jobs.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	s.log.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

// --- Applications ---

// ListApplications returns applications matching filter. Search covers the
// applicant's name and email, the job title and the exit exam result.
func (s *AdminService) ListApplications(ctx context.Context, filter ApplicationFilter) ([]domain.Application, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	all, err := s.apps.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Application, 0, len(all))
	for _, a := range all {
		if filter.Status != "" && filter.Status != "all" && string(a.Status) != filter.Status {
			continue
		}
		if needle != "" {
			title := ""
			if a.Job != nil {
				title = a.Job.Title
			}
			if !containsAny(needle, a.ApplicantName, a.Email, title, a.ExitExam) {
				continue
			}
		}
		out = append(out, a)
	}
	return out, nil
}

// ReviewApplication approves or rejects an application.
func (s *AdminService) ReviewApplication(ctx context.Context, id string, decision domain.ApplicationStatus) error {
	if err := s.guard(); err != nil {
		return err
	}
	if decision != domain.ApplicationApproved && decision != domain.ApplicationRejected {
		return fmt.Errorf("review application %s: unsupported decision %q", id, decision)
	}
	if err := s.apps.ReviewApplication(ctx, id, decision); err != nil {
		return fmt.Errorf("review application %s: %w", id, err)
	}
	s.log.Info().Str("application_id", id).Str("decision", string(decision)).Msg("application reviewed")
	return nil
}

// --- Users ---

// ListUsers returns users matching filter. Deployments without /users/all
// are served from /users.
func (s *AdminService) ListUsers(ctx context.Context, filter UserFilter) ([]domain.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	all, err := s.users.ListAllUsers(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Debug().Msg("/users/all not served, falling back to /users")
		all, err = s.users.ListUsers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.User, 0, len(all))
	for _, u := range all {
		if filter.Role != "" && filter.Role != "all" && string(u.Role) != filter.Role {
			continue
		}
		if needle != "" && !containsAny(needle, u.Name, u.Username, u.Email, u.FaydaID) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// ListIDApprovals returns applicants who uploaded an ID photo. Search covers
// name, email and ID number. Counts cover all submissions.
func (s *AdminService) ListIDApprovals(ctx context.Context, filter IDApprovalFilter) (*IDApprovals, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	all, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list id approvals: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))
	res := &IDApprovals{Users: make([]domain.User, 0, len(all))}
	for _, u := range all {
		if u.Role != domain.RoleApplicant || u.IDPhoto == "" {
			continue
		}
		res.Counts.Total++
		switch u.IDStatus {
		case domain.IDStatusPending:
			res.Counts.Pending++
		case domain.IDStatusActive:
			res.Counts.Active++
		case domain.IDStatusRejected:
			res.Counts.Rejected++
		}

		if filter.Status != "" && filter.Status != "all" && string(u.IDStatus) != filter.Status {
			continue
		}
		if needle != "" && !containsAny(needle, u.Name, u.Email, u.IDNumber) {
			continue
		}
		res.Users = append(res.Users, u)
	}
	return res, nil
}

// ReviewID approves or rejects an applicant's ID card.
func (s *AdminService) ReviewID(ctx context.Context, userID string, approve bool) (*domain.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	user, err := s.users.ReviewID(ctx, userID, approve)
	if err != nil {
		return nil, fmt.Errorf("review id %s: %w", userID, err)
	}
	s.log.Info().Str("user_id", userID).Bool("approved", approve).Msg("id reviewed")
	return user, nil
}
