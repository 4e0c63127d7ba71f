package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/jobportal/portal/internal/api/docs"
	"github.com/jobportal/portal/internal/api/handler"
	"github.com/jobportal/portal/internal/api/middleware"
	"github.com/jobportal/portal/internal/core/domain"
)

// Session is the session manager as the gateway sees it.
type Session interface {
	handler.SessionService
	Ready() <-chan struct{}
}

// Deps are the collaborators of the gateway.
type Deps struct {
	Session   Session
	Jobs      handler.JobBoard
	Applicant handler.ApplicantService
	Admin     handler.AdminService
	// Readiness is probed by /health/ready, keyed by name.
	Readiness map[string]handler.Dependency
	Log       zerolog.Logger

	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "jobportal_gateway",
		Registerer: d.Registerer,
	}))

	ready := middleware.SessionReady(d.Session.Ready())
	authed := middleware.Auth(d.Session)

	// --- Session ---
	sessionHandler := handler.NewSessionHandler(d.Session)
	e.GET("/session", sessionHandler.Get)
	e.POST("/session/login", sessionHandler.Login, ready)
	e.POST("/session/logout", sessionHandler.Logout)
	e.POST("/session/refresh", sessionHandler.Refresh, ready)

	// --- Public job board ---
	jobHandler := handler.NewJobHandler(d.Jobs)
	e.GET("/jobs", jobHandler.List)
	e.GET("/jobs/:id", jobHandler.Get)
	e.POST("/jobs/:id/apply", jobHandler.Apply)

	// --- Applicant ---
	applicantHandler := handler.NewApplicantHandler(d.Applicant)
	applicant := e.Group("/applicant", ready, authed, middleware.RBAC(d.Session, domain.RoleApplicant))
	applicant.GET("/dashboard", applicantHandler.Dashboard)
	applicant.PUT("/profile", applicantHandler.UpdateProfile)
	applicant.POST("/photo", applicantHandler.UploadPhoto)
	e.GET("/applicant/employee", applicantHandler.Employee, ready, authed)

	// --- Admin ---
	adminHandler := handler.NewAdminHandler(d.Admin)
	admin := e.Group("/admin", ready, authed, middleware.RBAC(d.Session, domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/jobs", adminHandler.ListJobs)
	admin.POST("/jobs", adminHandler.CreateJob)
	admin.PUT("/jobs/:id", adminHandler.UpdateJob)
	admin.DELETE("/jobs/:id", adminHandler.DeleteJob)
	admin.POST("/jobs/:id/toggle", adminHandler.ToggleJob)
	admin.GET("/applications", adminHandler.ListApplications)
	admin.POST("/applications/:id/approve", adminHandler.ApproveApplication)
	admin.POST("/applications/:id/reject", adminHandler.RejectApplication)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/id-approvals", adminHandler.ListIDApprovals)
	admin.POST("/id-approvals/:id/approve", adminHandler.ApproveID)
	admin.POST("/id-approvals/:id/reject", adminHandler.RejectID)

	// --- Health probes, metrics and docs (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are the remote API and token store up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
