package ports

import (
	"context"

	"github.com/jobportal/portal/internal/core/domain"
)

// IdentityAPI is the slice of the remote API the session manager talks to.
type IdentityAPI interface {
	// Me resolves the user behind token.
	Me(ctx context.Context, token string) (*domain.User, error)
	// Login exchanges credentials for a token and the user record. The
	// returned user never carries the token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
