package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

// JobBoard is the public job board.
type JobBoard interface {
	ListJobs(ctx context.Context, filter service.JobFilter) ([]domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	Apply(ctx context.Context, form domain.ApplicationForm) (*domain.Application, error)
}

// JobHandler serves the public job pages. No session is required.
type JobHandler struct {
	board JobBoard
	now   func() time.Time
}

func NewJobHandler(board JobBoard) *JobHandler {
	return &JobHandler{board: board, now: time.Now}
}

// List handles GET /jobs.
//
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Param        search  query     string  false  "Matches title, department or location"
// @Param        type    query     string  false  "Job type or all"
// @Success      200     {object}  map[string]any
// @Failure      502     {object}  map[string]any
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	filter := service.JobFilter{Search: c.QueryParam("search"), Type: c.QueryParam("type")}
	now := h.now()

	res := service.Fetch(c.Request().Context(), "Failed to fetch jobs", func(ctx context.Context) ([]jobResponse, error) {
		jobs, err := h.board.ListJobs(ctx, filter)
		if err != nil {
			return nil, err
		}
		return newJobResponses(jobs, now), nil
	})
	return renderResult(c, res)
}

// Get handles GET /jobs/:id.
//
// @Summary      Job detail
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id := c.Param("id")
	res := service.Fetch(c.Request().Context(), "Failed to fetch job details", func(ctx context.Context) (*jobResponse, error) {
		job, err := h.board.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}
		r := newJobResponse(*job, h.now())
		return &r, nil
	})
	return renderResult(c, res)
}

// Apply handles POST /jobs/:id/apply.
//
// @Summary      Apply for a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Job id"
// @Param        body  body      applyRequest  true  "Application"
// @Success      201   {object}  map[string]any
// @Failure      422   {object}  map[string]string
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.board.Apply(c.Request().Context(), req.toForm(c.Param("id")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}
