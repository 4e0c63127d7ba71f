// Package diagnostics records what the session manager swallows: structured
// log lines plus Prometheus counters.
package diagnostics

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal/internal/api/metrics"
	"github.com/jobportal/portal/internal/core/domain"
)

// Session implements ports.SessionDiagnostics.
type Session struct {
	log zerolog.Logger
	now func() time.Time
}

func NewSession(log zerolog.Logger) *Session {
	return &Session{log: log, now: time.Now}
}

func (s *Session) IdentityCheckFailed(err error, tokenExpiry time.Time) {
	reason := "error"
	switch {
	case !tokenExpiry.IsZero() && !tokenExpiry.After(s.now()):
		reason = "expired"
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
		reason = "unauthenticated"
	}
	metrics.IdentityCheckFailuresTotal.WithLabelValues(reason).Inc()

	ev := s.log.Warn().Err(err).Str("reason", reason)
	if !tokenExpiry.IsZero() {
		ev = ev.Time("token_expiry", tokenExpiry)
	}
	ev.Msg("auth check failed, stored token discarded")
}

func (s *Session) LoginSucceeded(user *domain.User) {
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("logged in")
}

func (s *Session) LoginFailed(err error) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.log.Info().Err(err).Msg("login failed")
}

func (s *Session) TokenStoreFailed(op string, err error) {
	metrics.TokenStoreErrorsTotal.WithLabelValues(op).Inc()
	s.log.Error().Err(err).Str("op", op).Msg("token store failure")
}

func (s *Session) StateChanged(from, to domain.SessionState) {
	metrics.SessionTransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
	if to == domain.SessionLoggedIn {
		metrics.SessionAuthenticated.Set(1)
	} else {
		metrics.SessionAuthenticated.Set(0)
	}
	s.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("session state changed")
}
