package ports

import "context"

// TokenStore is the durable home of the credential token. It holds a single
// value under domain.TokenKey.
type TokenStore interface {
	// Get returns domain.ErrTokenNotFound when no token is stored.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	// Delete succeeds when no token is stored.
	Delete(ctx context.Context) error
}

// Pinger is implemented by stores backed by a network service.
type Pinger interface {
	Ping(ctx context.Context) error
}
