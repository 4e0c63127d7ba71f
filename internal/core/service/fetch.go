package service

import (
	"context"

	"github.com/jobportal/portal/internal/core/domain"
)

// FetchStatus is the lifecycle of a page-level fetch.
type FetchStatus string

const (
	FetchLoading FetchStatus = "loading"
	FetchSuccess FetchStatus = "success"
	FetchError   FetchStatus = "error"
)

// Result is the uniform shape every page fetch resolves to.
type Result[T any] struct {
	Status FetchStatus `json:"status"`
	Data   T           `json:"data"`
	Error  string      `json:"error,omitempty"`

	// Err is the underlying failure, kept for status mapping.
	Err error `json:"-"`
}

// OK reports whether the fetch succeeded.
func (r Result[T]) OK() bool {
	return r.Status == FetchSuccess
}

// Fetch runs fn and folds its outcome into a Result. The error message is
// taken from the remote API when it sent one, otherwise fallback is used.
func Fetch[T any](ctx context.Context, fallback string, fn func(context.Context) (T, error)) Result[T] {
	data, err := fn(ctx)
	if err != nil {
		var zero T
		return Result[T]{Status: FetchError, Data: zero, Error: domain.MessageOr(err, fallback), Err: err}
	}
	return Result[T]{Status: FetchSuccess, Data: data}
}
