package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/ports"
)

// ApplicantDashboard is what the applicant dashboard renders. The two halves
// are fetched independently and may fail independently.
type ApplicantDashboard struct {
	Profile      Result[*domain.User]         `json:"profile"`
	Applications Result[[]domain.Application] `json:"applications"`
}

// ApplicantService backs the applicant dashboard.
type ApplicantService struct {
	session  SessionViewer
	users    ports.UsersAPI
	apps     ports.ApplicationsAPI
	employee ports.EmployeeAPI
	log      zerolog.Logger
}

func NewApplicantService(
	session SessionViewer,
	users ports.UsersAPI,
	apps ports.ApplicationsAPI,
	employee ports.EmployeeAPI,
	log zerolog.Logger,
) *ApplicantService {
	return &ApplicantService{
		session:  session,
		users:    users,
		apps:     apps,
		employee: employee,
		log:      log,
	}
}

// Dashboard loads the profile and the applicant's applications concurrently.
func (s *ApplicantService) Dashboard(ctx context.Context) (*ApplicantDashboard, error) {
	if err := RequireRole(s.session.View(), domain.RoleApplicant); err != nil {
		return nil, err
	}

	var d ApplicantDashboard
	var wg sync.WaitGroup
	wg.Go(func() {
		d.Profile = Fetch(ctx, "Failed to fetch profile", s.users.GetProfile)
	})
	wg.Go(func() {
		d.Applications = Fetch(ctx, "Failed to fetch applications", s.apps.ListApplications)
	})
	wg.Wait()

	if !d.Profile.OK() {
		s.log.Warn().Err(d.Profile.Err).Msg("applicant profile fetch failed")
	}
	if !d.Applications.OK() {
		s.log.Warn().Err(d.Applications.Err).Msg("applicant applications fetch failed")
	}
	return &d, nil
}

// UpdateProfile saves the editable profile fields.
func (s *ApplicantService) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	if err := RequireRole(s.session.View(), domain.RoleApplicant); err != nil {
		return nil, err
	}
	user, err := s.users.UpdateProfile(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// EmployeeProfile returns the employee record linked to the session.
func (s *ApplicantService) EmployeeProfile(ctx context.Context) (domain.EmployeeProfile, error) {
	if err := RequireRole(s.session.View()); err != nil {
		return nil, err
	}
	p, err := s.employee.GetEmployeeProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("employee profile: %w", err)
	}
	return p, nil
}

// UploadPhoto sends an ID photo (a data URL) for admin review.
func (s *ApplicantService) UploadPhoto(ctx context.Context, photo string) error {
	if err := RequireRole(s.session.View(), domain.RoleApplicant); err != nil {
		return err
	}
	if err := s.employee.UploadPhoto(ctx, photo); err != nil {
		return fmt.Errorf("upload photo: %w", err)
	}
	s.log.Info().Int("bytes", len(photo)).Msg("id photo uploaded")
	return nil
}
