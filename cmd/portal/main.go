// Command portal holds an operator session against the Job Portal API and
// exposes it as a local JSON gateway or one-shot commands.
//
// @title        Job Portal Gateway
// @version      1.0
// @description  Local gateway over the Job Portal API session.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/app"
	"github.com/jobportal/portal/internal/infrastructure/config"
	"github.com/jobportal/portal/pkg/logger"
)

const usage = `usage: portal <command> [flags]

commands:
  serve    run the local gateway (default)
  login    -u <username> -p <password>
  logout   forget the stored token
  whoami   show the current session
  jobs     [-search <text>] [-type <job type>]
`

func main() {
	loadLocalEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "portal:", err)
		os.Exit(1)
	}
}

func loadLocalEnv() {
	// A missing .env is normal; the environment is used as is.
	_ = godotenv.Load()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Pretty()})

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close token store")
		}
	}()

	switch cmd {
	case "serve":
		return serve(ctx, a, log)
	case "login":
		return loginCmd(ctx, a, args, out)
	case "logout":
		return logoutCmd(ctx, a, out)
	case "whoami":
		return whoamiCmd(ctx, a, out)
	case "jobs":
		return jobsCmd(ctx, a, args, out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func serve(ctx context.Context, a *app.App, log zerolog.Logger) error {
	e := a.Router()

	// The gateway answers 503 on session routes until this completes.
	go a.Session.Initialize(ctx)

	addr := ":" + a.Config.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("api", a.Remote.BaseURL()).Msg("gateway listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("gateway exited cleanly")
	return nil
}
