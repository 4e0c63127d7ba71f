package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jobportal/portal/internal/app"
	"github.com/jobportal/portal/internal/core/domain"
	"github.com/jobportal/portal/internal/core/service"
)

func loginCmd(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return errors.New("login: -u and -p are required")
	}

	a.Session.Initialize(ctx)
	res := a.Session.Login(ctx, *username, *password)
	if !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintf(out, "logged in as %s (%s)\n", res.User.Username, res.User.Role)
	return nil
}

func logoutCmd(ctx context.Context, a *app.App, out io.Writer) error {
	a.Session.Logout(ctx)
	fmt.Fprintln(out, "logged out")
	return nil
}

type whoami struct {
	domain.SessionView
	TokenExpiry *time.Time `json:"tokenExpiry,omitempty"`
}

func whoamiCmd(ctx context.Context, a *app.App, out io.Writer) error {
	a.Session.Initialize(ctx)

	w := whoami{SessionView: a.Session.View()}
	if token, err := a.Tokens.Get(ctx); err == nil {
		if exp := service.TokenExpiry(token); !exp.IsZero() {
			w.TokenExpiry = &exp
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(w)
}

func jobsCmd(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	search := fs.String("search", "", "match title, department or location")
	jobType := fs.String("type", domain.JobTypeAll, "job type")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res := service.Fetch(ctx, "Failed to fetch jobs", func(ctx context.Context) ([]domain.Job, error) {
		return a.Jobs.ListJobs(ctx, service.JobFilter{Search: *search, Type: *jobType})
	})
	if !res.OK() {
		return errors.New(res.Error)
	}

	now := time.Now()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDEPARTMENT\tTYPE\tLOCATION\tDEADLINE")
	for _, j := range res.Data {
		deadline := j.Deadline.Format(time.DateOnly)
		if j.DeadlinePassed(now) {
			deadline += " (closed)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Department, j.EffectiveType(), j.Location, deadline)
	}
	return tw.Flush()
}
