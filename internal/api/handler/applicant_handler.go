package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

type ApplicantService interface {
	Dashboard(ctx context.Context) (*service.ApplicantDashboard, error)
	UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error)
	EmployeeProfile(ctx context.Context) (domain.EmployeeProfile, error)
	UploadPhoto(ctx context.Context, photo string) error
}

// ApplicantHandler serves the applicant dashboard. Routes are gated to the
// applicant role by middleware.
type ApplicantHandler struct {
	svc ApplicantService
}

func NewApplicantHandler(svc ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{svc: svc}
}

// Dashboard handles GET /applicant/dashboard.
//
// @Summary      Applicant dashboard
// @Tags         applicant
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /applicant/dashboard [get]
func (h *ApplicantHandler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// UpdateProfile handles PUT /applicant/profile.
//
// @Summary      Update own profile
// @Tags         applicant
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Editable fields"
// @Success      200   {object}  map[string]any
// @Router       /applicant/profile [put]
func (h *ApplicantHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), domain.ProfileUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Employee handles GET /applicant/employee.
//
// @Summary      Own employee record
// @Tags         applicant
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /applicant/employee [get]
func (h *ApplicantHandler) Employee(c echo.Context) error {
	p, err := h.svc.EmployeeProfile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// UploadPhoto handles POST /applicant/photo.
//
// @Summary      Upload ID photo
// @Tags         applicant
// @Accept       json
// @Produce      json
// @Param        body  body      photoRequest  true  "Data URL or image URL"
// @Success      200   {object}  messageResponse
// @Router       /applicant/photo [post]
func (h *ApplicantHandler) UploadPhoto(c echo.Context) error {
	var req photoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.svc.UploadPhoto(c.Request().Context(), req.Photo); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Photo uploaded, awaiting approval"})
}
