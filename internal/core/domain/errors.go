package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTokenNotFound   = errors.New("token not found")
	ErrTokenUnreadable = errors.New("token unreadable")
	ErrSessionLoading  = errors.New("session loading")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("access forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidForm     = errors.New("invalid form")
)

// RemoteError is a non-2xx answer from the remote API. Message is the
// envelope's "error" field and may be empty.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote api: status %d", e.Status)
	}
	return fmt.Sprintf("remote api: %s (status %d)", e.Message, e.Status)
}

// Unwrap lets errors.Is match the auth and lookup sentinels.
func (e *RemoteError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// MessageOr returns the remote API's error message carried by err, or
// fallback when err carries none.
func MessageOr(err error, fallback string) string {
	var re *RemoteError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return fallback
}
