// Package store implements graph reads and writes for the movie catalog over
// a SPARQL endpoint. Query construction lives in queries.go; every embedded
// value is escaped or validated there before it reaches the wire.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/metrics"
	"github.com/cinegraph/cinegraph/internal/models"
	"github.com/cinegraph/cinegraph/internal/sparql"
)

// MovieStore executes movie and favorite operations against a graph store.
type MovieStore struct {
	client sparql.Client
	log    *logrus.Logger
}

// NewMovieStore creates a MovieStore on top of the given SPARQL client.
func NewMovieStore(client sparql.Client, log *logrus.Logger) *MovieStore {
	return &MovieStore{client: client, log: log}
}

// storeErr tags a client failure with models.ErrStoreUnavailable so callers
// can distinguish transport failures from validation and not-found results.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(models.ErrStoreUnavailable, err))
}

// movieIDFromURI extracts the opaque movie ID from a resource URI such as
// "http://example.org/movies#movie_1718000000000".
func movieIDFromURI(uri string) string {
	if i := strings.LastIndex(uri, "#"); i >= 0 {
		uri = uri[i+1:]
	}

	return strings.TrimPrefix(uri, "movie_")
}

// movieFromBinding maps a result row with ?movie/?title/?director/?genre/?rating
// variables onto a Movie.
func movieFromBinding(row sparql.Binding) models.Movie {
	return models.Movie{
		ID:       movieIDFromURI(row["movie"].Value),
		Title:    row["title"].Value,
		Director: row["director"].Value,
		Genre:    row["genre"].Value,
		Rating:   row["rating"].Float(),
	}
}

// ListMovies returns the whole catalog, best rated first.
func (s *MovieStore) ListMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := s.client.Select(ctx, allMoviesQuery())
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("select", "error").Inc()

		return nil, storeErr("listing movies", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("select", "ok").Inc()

	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, movieFromBinding(row))
	}

	return movies, nil
}

// GetMovie returns a single movie or models.ErrMovieNotFound.
func (s *MovieStore) GetMovie(ctx context.Context, movieID string) (*models.Movie, error) {
	q, err := movieByIDQuery(movieID)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Select(ctx, q)
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("select", "error").Inc()

		return nil, storeErr("getting movie", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("select", "ok").Inc()

	if len(rows) == 0 {
		return nil, models.ErrMovieNotFound
	}

	row := rows[0]
	movie := models.Movie{
		ID:       movieID,
		Title:    row["title"].Value,
		Director: row["director"].Value,
		Genre:    row["genre"].Value,
		Rating:   row["rating"].Float(),
	}

	return &movie, nil
}

// AddMovie inserts one movie node with all four attributes as a single write.
func (s *MovieStore) AddMovie(ctx context.Context, movie models.Movie) error {
	u, err := addMovieUpdate(movie)
	if err != nil {
		return err
	}

	if err := s.client.Update(ctx, u); err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("update", "error").Inc()

		return storeErr("adding movie", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("update", "ok").Inc()

	s.log.WithFields(logrus.Fields{"movie_id": movie.ID, "title": movie.Title}).Info("movie added")

	return nil
}

// ListFavorites returns all movies the user has favorited.
func (s *MovieStore) ListFavorites(ctx context.Context, userID string) ([]models.Movie, error) {
	q, err := favoritesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Select(ctx, q)
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("select", "error").Inc()

		return nil, storeErr("listing favorites", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("select", "ok").Inc()

	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, movieFromBinding(row))
	}

	return movies, nil
}

// IsFavorite reports whether the favorite edge exists.
func (s *MovieStore) IsFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	q, err := isFavoriteQuery(userID, movieID)
	if err != nil {
		return false, err
	}

	ok, err := s.client.Ask(ctx, q)
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("ask", "error").Inc()

		return false, storeErr("checking favorite", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("ask", "ok").Inc()

	return ok, nil
}

// EnsureUser creates the user node if it does not exist. This is a
// check-then-insert sequence, not an atomic upsert: concurrent first
// favorites for the same new user may both attempt the insert, which the
// triple store tolerates (inserting an existing triple is a no-op).
func (s *MovieStore) EnsureUser(ctx context.Context, userID string) error {
	q, err := userExistsQuery(userID)
	if err != nil {
		return err
	}

	exists, err := s.client.Ask(ctx, q)
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("ask", "error").Inc()

		return storeErr("checking user", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("ask", "ok").Inc()

	if exists {
		return nil
	}

	u, err := insertUserUpdate(userID)
	if err != nil {
		return err
	}

	if err := s.client.Update(ctx, u); err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("update", "error").Inc()

		return storeErr("creating user", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("update", "ok").Inc()

	s.log.WithField("user_id", userID).Info("user created")

	return nil
}

// AddFavorite inserts the favorite edge.
func (s *MovieStore) AddFavorite(ctx context.Context, userID, movieID string) error {
	u, err := addFavoriteUpdate(userID, movieID)
	if err != nil {
		return err
	}

	if err := s.client.Update(ctx, u); err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("update", "error").Inc()

		return storeErr("adding favorite", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("update", "ok").Inc()

	return nil
}

// RemoveFavorite deletes the favorite edge. Removing an absent edge succeeds.
func (s *MovieStore) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	u, err := removeFavoriteUpdate(userID, movieID)
	if err != nil {
		return err
	}

	if err := s.client.Update(ctx, u); err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("update", "error").Inc()

		return storeErr("removing favorite", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("update", "ok").Inc()

	return nil
}

// GenreHistogram returns (genre, count) pairs over the user's favorites,
// most frequent first.
func (s *MovieStore) GenreHistogram(ctx context.Context, userID string) ([]models.HistogramEntry, error) {
	q, err := genreHistogramQuery(userID)
	if err != nil {
		return nil, err
	}

	return s.histogram(ctx, q, "genre")
}

// DirectorHistogram returns (director, count) pairs over the user's
// favorites, most frequent first.
func (s *MovieStore) DirectorHistogram(ctx context.Context, userID string) ([]models.HistogramEntry, error) {
	q, err := directorHistogramQuery(userID)
	if err != nil {
		return nil, err
	}

	return s.histogram(ctx, q, "director")
}

func (s *MovieStore) histogram(ctx context.Context, query, variable string) ([]models.HistogramEntry, error) {
	rows, err := s.client.Select(ctx, query)
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("select", "error").Inc()

		return nil, storeErr("fetching "+variable+" histogram", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("select", "ok").Inc()

	entries := make([]models.HistogramEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.HistogramEntry{
			Label: row[variable].Value,
			Count: row["count"].Int(),
		})
	}

	return entries, nil
}

// SimilarMovies returns distinct movies matching the candidate genres or
// directors at or above the rating floor, excluding the user's favorites,
// best rated first, capped at 10.
func (s *MovieStore) SimilarMovies(ctx context.Context, q models.SimilarMoviesQuery) ([]models.Movie, error) {
	query, err := similarMoviesQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Select(ctx, query)
	if err != nil {
		metrics.SparqlQueriesTotal.WithLabelValues("select", "error").Inc()

		return nil, storeErr("finding similar movies", err)
	}
	metrics.SparqlQueriesTotal.WithLabelValues("select", "ok").Inc()

	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, movieFromBinding(row))
	}

	return movies, nil
}
