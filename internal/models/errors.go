package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation. These are detected before any store call.
var (
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingDirector  = errors.New("director is required")
	ErrMissingGenre     = errors.New("genre is required")
	ErrMissingUserID    = errors.New("user_id is required")
	ErrMissingMovieID   = errors.New("movie_id is required")
	ErrRatingOutOfRange = fmt.Errorf("rating must be between %.1f and %.1f", MinRating, MaxRating)
)

// ErrMovieNotFound indicates a single-item lookup found no movie. It is an
// explicit "absent" result, not a store failure.
var ErrMovieNotFound = errors.New("movie not found")

// ErrStoreUnavailable wraps any failure from the graph store client:
// connection, timeout, or a malformed response. Read paths feeding the
// recommendation engine absorb it; write paths surface it.
var ErrStoreUnavailable = errors.New("graph store unavailable")

// ErrInvalidIdentifier marks identifiers that cannot be embedded into a
// resource URI.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrInvalidID returns an error for an identifier that cannot be embedded
// into a resource URI.
func ErrInvalidID(field, id string) error {
	return fmt.Errorf("%w: %s %q contains characters outside [A-Za-z0-9_-]", ErrInvalidIdentifier, field, id)
}
