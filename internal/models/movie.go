// Package models defines data types for the movie graph.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Rating bounds enforced when a movie is created. Persisted ratings are
// trusted as-is and never re-validated on read.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Movie is a single catalog entry backed by an ex:Movie resource in the
// triple store. The ID is the local part of the resource URI and is treated
// as opaque everywhere except when it is embedded into a query.
type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
}

// AddMovieRequest is the payload for creating a new movie.
type AddMovieRequest struct {
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Genre    string  `json:"genre"`
	Rating   float64 `json:"rating"`
}

// Validate checks required fields and the rating range before any store call.
func (r *AddMovieRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}

	if strings.TrimSpace(r.Director) == "" {
		return ErrMissingDirector
	}

	if strings.TrimSpace(r.Genre) == "" {
		return ErrMissingGenre
	}

	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrRatingOutOfRange
	}

	return nil
}

// NewMovieID derives a movie identifier from the creation time, matching the
// historical millisecond-timestamp format. Callers that need several IDs in
// the same millisecond should append a suffix via SlugSuffix.
func NewMovieID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// SlugSuffix lowercases a title and strips everything outside [a-z0-9] so it
// can be appended to a timestamp ID by batch loaders.
func SlugSuffix(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ToggleFavoriteRequest is the payload for flipping a favorite edge.
type ToggleFavoriteRequest struct {
	UserID  string `json:"user_id"`
	MovieID string `json:"movie_id"`
}

// Validate checks both identifiers are present.
func (r *ToggleFavoriteRequest) Validate() error {
	if r.UserID == "" {
		return ErrMissingUserID
	}

	if r.MovieID == "" {
		return ErrMissingMovieID
	}

	return nil
}

// HistogramEntry is one (label, count) pair from a preference histogram,
// grouped over a user's favorite set. Entries are transient and recomputed
// on every recommendation request.
type HistogramEntry struct {
	Label string
	Count int
}

// Recommendation is one entry of a recommendation result, annotated with the
// source that contributed it.
type Recommendation struct {
	Movie
	Source string `json:"source"`
}

// Recommendation sources, in priority order.
const (
	SourceSimilarity = "similarity"
	SourceTopRated   = "top_rated"
)

// SimilarMoviesQuery describes a similarity query: candidate genres and
// directors (either may be empty; both empty means no genre/director
// restriction), a rating floor, and the user whose favorites are excluded.
type SimilarMoviesQuery struct {
	UserID    string
	Genres    []string
	Directors []string
	MinRating float64
}

func (q *SimilarMoviesQuery) String() string {
	return fmt.Sprintf("user=%s genres=%v directors=%v min_rating=%.1f",
		q.UserID, q.Genres, q.Directors, q.MinRating)
}
