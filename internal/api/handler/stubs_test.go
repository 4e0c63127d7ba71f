package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// request builds an echo context for method/path with an optional JSON body.
func request(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// statusFor returns the status a handler outcome ends up with: the written
// code, or the mapped code of a returned error.
func statusFor(rec *httptest.ResponseRecorder, err error) int {
	if err == nil {
		return rec.Code
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	code, _, _ := StatusOf(err)
	return code
}

type stubSession struct {
	view        domain.SessionView
	loginFn     func(username, password string) domain.LoginResult
	logoutCalls int
	rechecks    int
}

func (s *stubSession) View() domain.SessionView { return s.view }

func (s *stubSession) Login(_ context.Context, username, password string) domain.LoginResult {
	return s.loginFn(username, password)
}

func (s *stubSession) Logout(context.Context) {
	s.logoutCalls++
	s.view = domain.NewSessionView(nil, false)
}

func (s *stubSession) Recheck(context.Context) { s.rechecks++ }

type stubBoard struct {
	listFn  func(filter service.JobFilter) ([]domain.Job, error)
	getFn   func(id string) (*domain.Job, error)
	applyFn func(form domain.ApplicationForm) (*domain.Application, error)
}

func (s *stubBoard) ListJobs(_ context.Context, filter service.JobFilter) ([]domain.Job, error) {
	return s.listFn(filter)
}

func (s *stubBoard) GetJob(_ context.Context, id string) (*domain.Job, error) {
	return s.getFn(id)
}

func (s *stubBoard) Apply(_ context.Context, form domain.ApplicationForm) (*domain.Application, error) {
	return s.applyFn(form)
}

// stubAdmin implements AdminService; unset funcs panic when called.
type stubAdmin struct {
	AdminService
	dashboardFn func() (*service.AdminDashboard, error)
	createFn    func(in domain.JobInput) (*domain.Job, error)
	toggleFn    func(id string) (bool, error)
	deleteFn    func(id string) error
	reviewFn    func(id string, decision domain.ApplicationStatus) error
	usersFn     func(filter service.UserFilter) ([]domain.User, error)
	idsFn       func(filter service.IDApprovalFilter) (*service.IDApprovals, error)
}

func (s *stubAdmin) Dashboard(context.Context) (*service.AdminDashboard, error) {
	return s.dashboardFn()
}

func (s *stubAdmin) CreateJob(_ context.Context, in domain.JobInput) (*domain.Job, error) {
	return s.createFn(in)
}

func (s *stubAdmin) ToggleJob(_ context.Context, id string) (bool, error) {
	return s.toggleFn(id)
}

func (s *stubAdmin) DeleteJob(_ context.Context, id string) error {
	return s.deleteFn(id)
}

func (s *stubAdmin) ReviewApplication(_ context.Context, id string, decision domain.ApplicationStatus) error {
	return s.reviewFn(id, decision)
}

func (s *stubAdmin) ListUsers(_ context.Context, filter service.UserFilter) ([]domain.User, error) {
	return s.usersFn(filter)
}

func (s *stubAdmin) ListIDApprovals(_ context.Context, filter service.IDApprovalFilter) (*service.IDApprovals, error) {
	return s.idsFn(filter)
}

type stubDependency struct{ err error }

func (d stubDependency) Ping(context.Context) error { return d.err }

type stubApplicant struct {
	ApplicantService
	profileFn func(in domain.ProfileUpdate) (*domain.User, error)
	photoFn   func(photo string) error
}

func (s *stubApplicant) UpdateProfile(_ context.Context, in domain.ProfileUpdate) (*domain.User, error) {
	return s.profileFn(in)
}

func (s *stubApplicant) UploadPhoto(_ context.Context, photo string) error {
	return s.photoFn(photo)
}
