// Package common defines shared constants and sentinel errors used across
// the client and server layers of notekeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorBadRequest   = errors.New("bad request")

	// Startup errors. A missing secret or DSN is fatal.
	ErrorConfig = errors.New("configuration error")
)

// DetailedError pairs a sentinel with the message shown to API clients.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string { return e.Err.Error() + ": " + e.Detail }

func (e *DetailedError) Unwrap() error { return e.Err }

// WithDetail wraps sentinel so that errors.Is still matches it and Detail
// returns msg.
func WithDetail(sentinel error, msg string) error {
	return &DetailedError{Err: sentinel, Detail: msg}
}

// Detail returns the client-facing message attached by WithDetail.
func Detail(err error) (string, bool) {
	var de *DetailedError
	if errors.As(err, &de) {
		return de.Detail, true
	}
	return "", false
}
