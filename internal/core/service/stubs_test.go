package service

import (
	"context"
	"sync"
	"time"

	"github.com/jobportal/portal/internal/core/domain"
)

type stubTokenStore struct {
	mu      sync.Mutex
	token   string
	getErr  error
	setErr  error
	gets    int
	deletes int
}

func (s *stubTokenStore) Get(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.getErr != nil {
		return "", s.getErr
	}
	if s.token == "" {
		return "", domain.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *stubTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.token = token
	return nil
}

func (s *stubTokenStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	s.token = ""
	return nil
}

func (s *stubTokenStore) stored() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

type stubIdentityAPI struct {
	mu      sync.Mutex
	meCalls int

	meFn    func(ctx context.Context, token string) (*domain.User, error)
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubIdentityAPI) Me(ctx context.Context, token string) (*domain.User, error) {
	s.mu.Lock()
	s.meCalls++
	s.mu.Unlock()
	return s.meFn(ctx, token)
}

func (s *stubIdentityAPI) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubIdentityAPI) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meCalls
}

type recordingDiag struct {
	mu             sync.Mutex
	identityErrs   []error
	loginErrs      []error
	loginSuccesses int
	storeOps       []string
	transitions    [][2]domain.SessionState
}

func (d *recordingDiag) IdentityCheckFailed(err error, _ time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.identityErrs = append(d.identityErrs, err)
}

func (d *recordingDiag) LoginSucceeded(*domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loginSuccesses++
}

func (d *recordingDiag) LoginFailed(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loginErrs = append(d.loginErrs, err)
}

func (d *recordingDiag) TokenStoreFailed(op string, _ error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.storeOps = append(d.storeOps, op)
}

func (d *recordingDiag) StateChanged(from, to domain.SessionState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.transitions = append(d.transitions, [2]domain.SessionState{from, to})
}

// fixedViewer reports a constant session view.
type fixedViewer struct {
	view domain.SessionView
}

func (f fixedViewer) View() domain.SessionView {
	return f.view
}

func viewerFor(role domain.Role) fixedViewer {
	return fixedViewer{view: domain.NewSessionView(&domain.User{ID: "u1", Role: role}, false)}
}

type stubJobsAPI struct {
	listFn   func(ctx context.Context) ([]domain.Job, error)
	getFn    func(ctx context.Context, id string) (*domain.Job, error)
	createFn func(ctx context.Context, in domain.JobInput) (*domain.Job, error)
	updateFn func(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error)
	activeFn func(ctx context.Context, id string, active bool) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubJobsAPI) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return s.listFn(ctx)
}

func (s *stubJobsAPI) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.getFn(ctx, id)
}

func (s *stubJobsAPI) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	return s.createFn(ctx, in)
}

func (s *stubJobsAPI) UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubJobsAPI) SetJobActive(ctx context.Context, id string, active bool) error {
	return s.activeFn(ctx, id, active)
}

func (s *stubJobsAPI) DeleteJob(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubApplicationsAPI struct {
	applyFn  func(ctx context.Context, form domain.ApplicationForm) (*domain.Application, error)
	listFn   func(ctx context.Context) ([]domain.Application, error)
	reviewFn func(ctx context.Context, id string, decision domain.ApplicationStatus) error
}

func (s *stubApplicationsAPI) Apply(ctx context.Context, form domain.ApplicationForm) (*domain.Application, error) {
	return s.applyFn(ctx, form)
}

func (s *stubApplicationsAPI) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return s.listFn(ctx)
}

func (s *stubApplicationsAPI) ReviewApplication(ctx context.Context, id string, decision domain.ApplicationStatus) error {
	return s.reviewFn(ctx, id, decision)
}

type stubUsersAPI struct {
	profileFn func(ctx context.Context) (*domain.User, error)
	updateFn  func(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error)
	allFn     func(ctx context.Context) ([]domain.User, error)
	listFn    func(ctx context.Context) ([]domain.User, error)
	reviewFn  func(ctx context.Context, userID string, approve bool) (*domain.User, error)
}

func (s *stubUsersAPI) GetProfile(ctx context.Context) (*domain.User, error) {
	return s.profileFn(ctx)
}

func (s *stubUsersAPI) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	return s.updateFn(ctx, in)
}

func (s *stubUsersAPI) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.allFn(ctx)
}

func (s *stubUsersAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUsersAPI) ReviewID(ctx context.Context, userID string, approve bool) (*domain.User, error) {
	return s.reviewFn(ctx, userID, approve)
}

type stubEmployeeAPI struct {
	profileFn func(ctx context.Context) (domain.EmployeeProfile, error)
	photoFn   func(ctx context.Context, photo string) error
}

func (s *stubEmployeeAPI) GetEmployeeProfile(ctx context.Context) (domain.EmployeeProfile, error) {
	return s.profileFn(ctx)
}

func (s *stubEmployeeAPI) UploadPhoto(ctx context.Context, photo string) error {
	return s.photoFn(ctx, photo)
}
