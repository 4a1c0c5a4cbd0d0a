package api

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieRepository defines catalog operations used by MovieHandler.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*models.Movie, error)
	AddMovie(ctx context.Context, req models.AddMovieRequest) (*models.Movie, error)
}

// FavoriteRepository defines favorite operations used by FavoriteHandler.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID string) ([]models.Movie, error)
	IsFavorite(ctx context.Context, userID, movieID string) (bool, error)
	ToggleFavorite(ctx context.Context, userID, movieID string) (bool, error)
}

// Recommender defines the recommendation and opinion operations used by
// RecommendationHandler and MovieHandler.
type Recommender interface {
	Recommend(ctx context.Context, userID string, limit int) []models.Recommendation
	Opinion(ctx context.Context, movieID string) string
}

// StorePinger verifies graph store connectivity for readiness checks.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// SampleLoader writes sample movies; used by the admin handler.
type SampleLoader interface {
	AddMovie(ctx context.Context, movie models.Movie) error
}
