package ports

import (
	"time"

	"github.com/jobportal/portal/internal/core/domain"
)

// SessionDiagnostics receives the failures the session manager swallows so
// they stay observable without reaching its callers.
type SessionDiagnostics interface {
	// IdentityCheckFailed is called when a stored token could not be
	// resolved. tokenExpiry is zero when the token carries no readable expiry.
	IdentityCheckFailed(err error, tokenExpiry time.Time)
	LoginSucceeded(user *domain.User)
	LoginFailed(err error)
	TokenStoreFailed(op string, err error)
	StateChanged(from, to domain.SessionState)
}
