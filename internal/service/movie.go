package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/domain"
	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieStore is the data-access interface MovieService depends on.
type MovieStore interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*models.Movie, error)
	AddMovie(ctx context.Context, movie models.Movie) error
}

// Compile-time check: *MovieService must satisfy domain.MovieService.
var _ domain.MovieService = (*MovieService)(nil)

// MovieService wraps MovieStore with validation and ID assignment.
type MovieService struct {
	store MovieStore
	log   *logrus.Logger
	now   func() time.Time
}

// NewMovieService creates a MovieService.
func NewMovieService(store MovieStore, log *logrus.Logger) *MovieService {
	return &MovieService{store: store, log: log, now: time.Now}
}

// ListMovies returns the catalog, best rated first (pass-through).
func (s *MovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return s.store.ListMovies(ctx)
}

// GetMovie returns a single movie by ID (pass-through).
func (s *MovieService) GetMovie(ctx context.Context, movieID string) (*models.Movie, error) {
	return s.store.GetMovie(ctx, movieID)
}

// AddMovie validates the request, assigns a timestamp-derived ID, and writes
// the movie. Validation failures are reported before any store call; write
// failures are surfaced, never swallowed.
func (s *MovieService) AddMovie(ctx context.Context, req models.AddMovieRequest) (*models.Movie, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	movie := models.Movie{
		ID:       models.NewMovieID(s.now()),
		Title:    strings.TrimSpace(req.Title),
		Director: strings.TrimSpace(req.Director),
		Genre:    strings.TrimSpace(req.Genre),
		Rating:   req.Rating,
	}

	if err := s.store.AddMovie(ctx, movie); err != nil {
		return nil, err
	}

	return &movie, nil
}
