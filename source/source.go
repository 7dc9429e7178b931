// Package source defines the movie domain model and the paged catalog it is read from.
package source

import (
	"context"
	"errors"
)

// Source is a paged movie catalog that can also report where a movie streams.
type Source interface {
	// Name returns a human-readable name of the catalog.
	Name() string

	// Discover returns one page of the catalog. Pages start at 1.
	Discover(ctx context.Context, page int) (*Page, error)

	// ProvidersOf returns the streaming services offering the movie in the configured region.
	ProvidersOf(ctx context.Context, movieID int) ([]ProviderRef, error)
}

var (
	// ErrUnavailable reports a failed or malformed catalog page response.
	ErrUnavailable = errors.New("source unavailable")

	// ErrProviderLookup reports a failed availability lookup for a single movie.
	ErrProviderLookup = errors.New("provider lookup failed")
)

// TransientError marks a failure worth retrying, such as a timeout or a 5xx response.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is marked as retryable.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}
