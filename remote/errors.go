package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrRemote indicates the search service answered with an unexpected status.
	ErrRemote = errors.New("remote: search service error")

	// ErrInvalidResponse indicates a reply body that does not match the contract.
	ErrInvalidResponse = errors.New("remote: invalid response")

	// ErrNetwork indicates the search service could not be reached.
	ErrNetwork = errors.New("remote: network error")

	// ErrEndpoint indicates an unusable endpoint URL.
	ErrEndpoint = errors.New("remote: invalid endpoint")
)

// StatusError is a non-2xx reply the client could not map to a search outcome.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote: search service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote: search service returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is(err, ErrRemote) match.
func (e *StatusError) Unwrap() error { return ErrRemote }

// IsRateLimited reports whether err is a 429 reply.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 429
}
