// Package app wires the portal: token store, remote client, session manager
// and page services. Both the gateway and the CLI commands build one App.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/api"
	"github.com/jobportal/portal/internal/api/handler"
	"github.com/jobportal/portal/internal/core/ports"
	"github.com/jobportal/portal/internal/core/service"
	"github.com/jobportal/portal/internal/infrastructure/config"
	mongostore "github.com/jobportal/portal/internal/infrastructure/db/mongo"
	redisstore "github.com/jobportal/portal/internal/infrastructure/db/redis"
	"github.com/jobportal/portal/internal/infrastructure/diagnostics"
	"github.com/jobportal/portal/internal/infrastructure/remote"
	"github.com/jobportal/portal/internal/infrastructure/tokenstore"
)

// App holds one session and the services built on it.
type App struct {
	Config    *config.Config
	Tokens    ports.TokenStore
	Remote    *remote.Client
	Session   *service.SessionManager
	Jobs      *service.JobBoard
	Applicant *service.ApplicantService
	Admin     *service.AdminService

	log     zerolog.Logger
	closers []func(context.Context) error
}

// New builds the application. The session is not initialised yet.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, log: log}

	tokens, err := a.openTokenStore(ctx)
	if err != nil {
		return nil, err
	}
	a.Tokens = tokens

	a.Remote = remote.NewClient(remote.Config{
		BaseURL: cfg.API.URL,
		Timeout: cfg.API.Timeout,
	}, tokens, log.With().Str("component", "remote").Logger())

	a.Session = service.NewSessionManager(tokens, a.Remote,
		diagnostics.NewSession(log.With().Str("component", "session").Logger()))

	svcLog := log.With().Str("component", "service").Logger()
	a.Jobs = service.NewJobBoard(a.Remote, a.Remote, svcLog)
	a.Applicant = service.NewApplicantService(a.Session, a.Remote, a.Remote, a.Remote, svcLog)
	a.Admin = service.NewAdminService(a.Session, a.Remote, a.Remote, a.Remote, svcLog)
	return a, nil
}

func (a *App) openTokenStore(ctx context.Context) (ports.TokenStore, error) {
	cfg := a.Config
	switch cfg.Token.Store {
	case config.StoreMemory:
		return tokenstore.NewMemory(), nil
	case config.StoreRedis:
		s, err := redisstore.Open(ctx, redisstore.Config{
			Addr:      cfg.Redis.Addr,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis token store: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return s.Close() })
		return s, nil
	case config.StoreMongo:
		s, err := mongostore.Open(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, fmt.Errorf("open mongo token store: %w", err)
		}
		a.closers = append(a.closers, s.Close)
		return s, nil
	default:
		var sealer *tokenstore.Sealer
		if cfg.Token.SealKey != "" {
			s, err := tokenstore.ParseSealKey(cfg.Token.SealKey)
			if err != nil {
				return nil, err
			}
			sealer = s
		}
		return tokenstore.NewFile(cfg.Token.File, sealer), nil
	}
}

// Router builds the gateway over this App.
func (a *App) Router() *echo.Echo {
	readiness := map[string]handler.Dependency{"remote_api": a.Remote}
	if p, ok := a.Tokens.(ports.Pinger); ok {
		readiness["token_store"] = p
	}
	return api.NewRouter(api.Deps{
		Session:   a.Session,
		Jobs:      a.Jobs,
		Applicant: a.Applicant,
		Admin:     a.Admin,
		Readiness: readiness,
		Log:       a.log.With().Str("component", "gateway").Logger(),
	})
}

// Close releases network-backed token stores.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for _, c := range a.closers {
		if err := c(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
