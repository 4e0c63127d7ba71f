package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*service.AdminDashboard, error)
	ListJobs(ctx context.Context, search string) ([]domain.Job, error)
	CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error)
	UpdateJob(ctx context.Context, id string, in domain.JobInput) (*domain.Job, error)
	ToggleJob(ctx context.Context, id string) (bool, error)
	DeleteJob(ctx context.Context, id string) error
	ListApplications(ctx context.Context, filter service.ApplicationFilter) ([]domain.Application, error)
	ReviewApplication(ctx context.Context, id string, decision domain.ApplicationStatus) error
	ListUsers(ctx context.Context, filter service.UserFilter) ([]domain.User, error)
	ListIDApprovals(ctx context.Context, filter service.IDApprovalFilter) (*service.IDApprovals, error)
	ReviewID(ctx context.Context, userID string, approve bool) (*domain.User, error)
}

// AdminHandler serves the admin console. Routes are gated to the admin role
// by middleware.
type AdminHandler struct {
	svc AdminService
	now func() time.Time
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{svc: svc, now: time.Now}
}

// Dashboard handles GET /admin/dashboard.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  map[string]any
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	res := service.Fetch(c.Request().Context(), "Failed to fetch dashboard data", h.svc.Dashboard)
	return renderResult(c, res)
}

// --- Jobs ---

// ListJobs handles GET /admin/jobs.
//
// @Summary      All jobs, active or not
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "Matches title or department"
// @Success      200     {object}  map[string]any
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c echo.Context) error {
	search := c.QueryParam("search")
	now := h.now()
	res := service.Fetch(c.Request().Context(), "Failed to fetch jobs", func(ctx context.Context) ([]jobResponse, error) {
		jobs, err := h.svc.ListJobs(ctx, search)
		if err != nil {
			return nil, err
		}
		return newJobResponses(jobs, now), nil
	})
	return renderResult(c, res)
}

// CreateJob handles POST /admin/jobs.
//
// @Summary      Post a job
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      jobRequest  true  "Job"
// @Success      201   {object}  map[string]any
// @Failure      422   {object}  map[string]string
// @Router       /admin/jobs [post]
func (h *AdminHandler) CreateJob(c echo.Context) error {
	in, err := h.bindJob(c)
	if err != nil {
		return err
	}
	job, err := h.svc.CreateJob(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// UpdateJob handles PUT /admin/jobs/:id.
//
// @Summary      Edit a job
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Job"
// @Success      200   {object}  map[string]any
// @Failure      422   {object}  map[string]string
// @Router       /admin/jobs/{id} [put]
func (h *AdminHandler) UpdateJob(c echo.Context) error {
	in, err := h.bindJob(c)
	if err != nil {
		return err
	}
	job, err := h.svc.UpdateJob(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) bindJob(c echo.Context) (domain.JobInput, error) {
	var req jobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return domain.JobInput{}, err
	}
	return req.toInput()
}

// ToggleJob handles POST /admin/jobs/:id/toggle.
//
// @Summary      Flip a job between active and inactive
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  toggleResponse
// @Router       /admin/jobs/{id}/toggle [post]
func (h *AdminHandler) ToggleJob(c echo.Context) error {
	id := c.Param("id")
	active, err := h.svc.ToggleJob(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleResponse{ID: id, IsActive: active})
}

// DeleteJob handles DELETE /admin/jobs/:id.
//
// @Summary      Delete a job
// @Tags         admin
// @Param        id  path  string  true  "Job id"
// @Success      204
// @Router       /admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c echo.Context) error {
	if err := h.svc.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Applications ---

// ListApplications handles GET /admin/applications.
//
// @Summary      Applications
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "Matches name, email, job title or exit exam"
// @Param        status  query     string  false  "pending, approved, rejected or all"
// @Success      200     {object}  map[string]any
// @Router       /admin/applications [get]
func (h *AdminHandler) ListApplications(c echo.Context) error {
	filter := service.ApplicationFilter{Search: c.QueryParam("search"), Status: c.QueryParam("status")}
	res := service.Fetch(c.Request().Context(), "Failed to fetch applications", func(ctx context.Context) ([]domain.Application, error) {
		return h.svc.ListApplications(ctx, filter)
	})
	return renderResult(c, res)
}

// ApproveApplication handles POST /admin/applications/:id/approve.
//
// @Summary      Approve an application
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  messageResponse
// @Router       /admin/applications/{id}/approve [post]
func (h *AdminHandler) ApproveApplication(c echo.Context) error {
	return h.reviewApplication(c, domain.ApplicationApproved)
}

// RejectApplication handles POST /admin/applications/:id/reject.
//
// @Summary      Reject an application
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  messageResponse
// @Router       /admin/applications/{id}/reject [post]
func (h *AdminHandler) RejectApplication(c echo.Context) error {
	return h.reviewApplication(c, domain.ApplicationRejected)
}

func (h *AdminHandler) reviewApplication(c echo.Context, decision domain.ApplicationStatus) error {
	if err := h.svc.ReviewApplication(c.Request().Context(), c.Param("id"), decision); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Application " + string(decision)})
}

// --- Users ---

// ListUsers handles GET /admin/users.
//
// @Summary      Users
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "Matches name, username, email or Fayda id"
// @Param        role    query     string  false  "admin, applicant or all"
// @Success      200     {object}  map[string]any
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := service.UserFilter{Search: c.QueryParam("search"), Role: c.QueryParam("role")}
	res := service.Fetch(c.Request().Context(), "Failed to fetch users", func(ctx context.Context) ([]domain.User, error) {
		return h.svc.ListUsers(ctx, filter)
	})
	return renderResult(c, res)
}

// ListIDApprovals handles GET /admin/id-approvals.
//
// @Summary      ID cards awaiting or past review, with per-status counts
// @Tags         admin
// @Produce      json
// @Param        search  query     string  false  "Matches name, email or ID number"
// @Param        status  query     string  false  "pending, active, rejected or all"
// @Success      200     {object}  map[string]any
// @Router       /admin/id-approvals [get]
func (h *AdminHandler) ListIDApprovals(c echo.Context) error {
	filter := service.IDApprovalFilter{Search: c.QueryParam("search"), Status: c.QueryParam("status")}
	res := service.Fetch(c.Request().Context(), "Failed to fetch ID approvals", func(ctx context.Context) (*service.IDApprovals, error) {
		return h.svc.ListIDApprovals(ctx, filter)
	})
	return renderResult(c, res)
}

// ApproveID handles POST /admin/id-approvals/:id/approve.
//
// @Summary      Approve an ID card
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]any
// @Router       /admin/id-approvals/{id}/approve [post]
func (h *AdminHandler) ApproveID(c echo.Context) error {
	return h.reviewID(c, true)
}

// RejectID handles POST /admin/id-approvals/:id/reject.
//
// @Summary      Reject an ID card
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]any
// @Router       /admin/id-approvals/{id}/reject [post]
func (h *AdminHandler) RejectID(c echo.Context) error {
	return h.reviewID(c, false)
}

func (h *AdminHandler) reviewID(c echo.Context, approve bool) error {
	user, err := h.svc.ReviewID(c.Request().Context(), c.Param("id"), approve)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
