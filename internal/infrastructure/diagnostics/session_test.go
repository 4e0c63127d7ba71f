package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/api/metrics"
	"github.com/jobportal/portal/internal/core/domain"
)

func TestSession_IdentityCheckReason(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		err    error
		expiry time.Time
		want   string
	}{
		{"expired token", &domain.RemoteError{Status: 401}, now.Add(-time.Minute), "expired"},
		{"rejected token", &domain.RemoteError{Status: 401}, now.Add(time.Hour), "unauthenticated"},
		{"opaque token rejected", &domain.RemoteError{Status: 403}, time.Time{}, "unauthenticated"},
		{"transport failure", errors.New("connection refused"), time.Time{}, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewSession(zerolog.New(&buf))
			s.now = func() time.Time { return now }

			counter := metrics.IdentityCheckFailuresTotal.WithLabelValues(tt.want)
			before := testutil.ToFloat64(counter)
			s.IdentityCheckFailed(tt.err, tt.expiry)

			if got := testutil.ToFloat64(counter) - before; got != 1 {
				t.Fatalf("expected %q counter to grow by 1, got %v", tt.want, got)
			}
			if !strings.Contains(buf.String(), `"reason":"`+tt.want+`"`) {
				t.Fatalf("log line missing reason: %s", buf.String())
			}
		})
	}
}

func TestSession_LoginCounters(t *testing.T) {
	s := NewSession(zerolog.Nop())
	ok := metrics.LoginsTotal.WithLabelValues("success")
	bad := metrics.LoginsTotal.WithLabelValues("failure")
	okBefore, badBefore := testutil.ToFloat64(ok), testutil.ToFloat64(bad)

	s.LoginSucceeded(&domain.User{ID: "u1", Role: domain.RoleAdmin})
	s.LoginFailed(errors.New("nope"))
	s.LoginFailed(errors.New("nope"))

	if got := testutil.ToFloat64(ok) - okBefore; got != 1 {
		t.Fatalf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(bad) - badBefore; got != 2 {
		t.Fatalf("expected 2 failures, got %v", got)
	}
}

func TestSession_StateChangedSetsGauge(t *testing.T) {
	s := NewSession(zerolog.Nop())

	s.StateChanged(domain.SessionUnknown, domain.SessionLoggedIn)
	if got := testutil.ToFloat64(metrics.SessionAuthenticated); got != 1 {
		t.Fatalf("expected gauge 1, got %v", got)
	}
	s.StateChanged(domain.SessionLoggedIn, domain.SessionLoggedOut)
	if got := testutil.ToFloat64(metrics.SessionAuthenticated); got != 0 {
		t.Fatalf("expected gauge 0, got %v", got)
	}
}

func TestSession_TokenStoreFailed(t *testing.T) {
	s := NewSession(zerolog.Nop())
	c := metrics.TokenStoreErrorsTotal.WithLabelValues("set")
	before := testutil.ToFloat64(c)

	s.TokenStoreFailed("set", errors.New("disk full"))

	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}
