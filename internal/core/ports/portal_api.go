package ports

import (
	"context"

	"github.com/jobportal/portal/internal/core/domain"
)

// JobsAPI covers the remote job resource.
type JobsAPI interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error)
	SetJobActive(ctx context.Context, id string, active bool) error
	DeleteJob(ctx context.Context, id string) error
}

// ApplicationsAPI covers the remote application resource.
type ApplicationsAPI interface {
	Apply(ctx context.Context, form domain.ApplicationForm) (*domain.Application, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
	// ReviewApplication sends an approve or reject decision.
	ReviewApplication(ctx context.Context, id string, decision domain.ApplicationStatus) error
}

// UsersAPI covers the remote user resource.
type UsersAPI interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error)
	// ListAllUsers calls /users/all, which older deployments do not serve.
	ListAllUsers(ctx context.Context) ([]domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	// ReviewID approves or rejects a user's ID card and returns the updated
	// record (approval assigns the ID number).
	ReviewID(ctx context.Context, userID string, approve bool) (*domain.User, error)
}

// EmployeeAPI covers the employee profile and ID photo upload.
type EmployeeAPI interface {
	GetEmployeeProfile(ctx context.Context) (domain.EmployeeProfile, error)
	UploadPhoto(ctx context.Context, photo string) error
}
