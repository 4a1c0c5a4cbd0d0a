// Package domain defines the canonical service interfaces shared across API
// layers (REST, client). Consumers should depend on these interfaces rather
// than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieService defines catalog operations.
type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*models.Movie, error)
	AddMovie(ctx context.Context, req models.AddMovieRequest) (*models.Movie, error)
}

// FavoriteService defines favorite-edge operations.
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID string) ([]models.Movie, error)
	IsFavorite(ctx context.Context, userID, movieID string) (bool, error)
	ToggleFavorite(ctx context.Context, userID, movieID string) (bool, error)
}

// Recommender defines the recommendation and opinion operations.
// Recommend is best-effort: store failures degrade to an empty list and are
// never surfaced to the caller. Opinion likewise always yields a sentence.
type Recommender interface {
	Recommend(ctx context.Context, userID string, limit int) []models.Recommendation
	Opinion(ctx context.Context, movieID string) string
}
