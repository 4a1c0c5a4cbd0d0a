package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// mockStore implements the store interfaces of all services in this package.
// Unset function fields mean "not expected": calling one panics, which
// surfaces an unexpected call as a test failure.
type mockStore struct {
	calls []string

	listMovies        func(ctx context.Context) ([]models.Movie, error)
	listFavorites     func(ctx context.Context, userID string) ([]models.Movie, error)
	getMovie          func(ctx context.Context, movieID string) (*models.Movie, error)
	addMovie          func(ctx context.Context, movie models.Movie) error
	isFavorite        func(ctx context.Context, userID, movieID string) (bool, error)
	ensureUser        func(ctx context.Context, userID string) error
	addFavorite       func(ctx context.Context, userID, movieID string) error
	removeFavorite    func(ctx context.Context, userID, movieID string) error
	genreHistogram    func(ctx context.Context, userID string) ([]models.HistogramEntry, error)
	directorHistogram func(ctx context.Context, userID string) ([]models.HistogramEntry, error)
	similarMovies     func(ctx context.Context, q models.SimilarMoviesQuery) ([]models.Movie, error)
}

func (m *mockStore) ListMovies(ctx context.Context) ([]models.Movie, error) {
	m.calls = append(m.calls, "ListMovies")
	return m.listMovies(ctx)
}

func (m *mockStore) ListFavorites(ctx context.Context, userID string) ([]models.Movie, error) {
	m.calls = append(m.calls, "ListFavorites")
	return m.listFavorites(ctx, userID)
}

func (m *mockStore) GetMovie(ctx context.Context, movieID string) (*models.Movie, error) {
	m.calls = append(m.calls, "GetMovie")
	return m.getMovie(ctx, movieID)
}

func (m *mockStore) AddMovie(ctx context.Context, movie models.Movie) error {
	m.calls = append(m.calls, "AddMovie")
	return m.addMovie(ctx, movie)
}

func (m *mockStore) IsFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	m.calls = append(m.calls, "IsFavorite")
	return m.isFavorite(ctx, userID, movieID)
}

func (m *mockStore) EnsureUser(ctx context.Context, userID string) error {
	m.calls = append(m.calls, "EnsureUser")
	return m.ensureUser(ctx, userID)
}

func (m *mockStore) AddFavorite(ctx context.Context, userID, movieID string) error {
	m.calls = append(m.calls, "AddFavorite")
	return m.addFavorite(ctx, userID, movieID)
}

func (m *mockStore) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	m.calls = append(m.calls, "RemoveFavorite")
	return m.removeFavorite(ctx, userID, movieID)
}

func (m *mockStore) GenreHistogram(ctx context.Context, userID string) ([]models.HistogramEntry, error) {
	m.calls = append(m.calls, "GenreHistogram")
	return m.genreHistogram(ctx, userID)
}

func (m *mockStore) DirectorHistogram(ctx context.Context, userID string) ([]models.HistogramEntry, error) {
	m.calls = append(m.calls, "DirectorHistogram")
	return m.directorHistogram(ctx, userID)
}

func (m *mockStore) SimilarMovies(ctx context.Context, q models.SimilarMoviesQuery) ([]models.Movie, error) {
	m.calls = append(m.calls, "SimilarMovies")
	return m.similarMovies(ctx, q)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}
