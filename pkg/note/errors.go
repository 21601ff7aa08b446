package note

import "errors"

var (
	// ErrNotFound indicates that no note exists under the requested
	// identifier.
	ErrNotFound = errors.New("note not found")

	// ErrBackendUnavailable indicates that the underlying store could not
	// be reached or returned a malformed response.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
