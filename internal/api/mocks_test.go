package api_test

import (
	"context"

	"github.com/cinegraph/cinegraph/internal/models"
)

// mockMovieRepo implements api.MovieRepository for testing.
type mockMovieRepo struct {
	listFn func(ctx context.Context) ([]models.Movie, error)
	getFn  func(ctx context.Context, movieID string) (*models.Movie, error)
	addFn  func(ctx context.Context, req models.AddMovieRequest) (*models.Movie, error)
}

func (m *mockMovieRepo) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return m.listFn(ctx)
}

func (m *mockMovieRepo) GetMovie(ctx context.Context, movieID string) (*models.Movie, error) {
	return m.getFn(ctx, movieID)
}

func (m *mockMovieRepo) AddMovie(ctx context.Context, req models.AddMovieRequest) (*models.Movie, error) {
	return m.addFn(ctx, req)
}

// mockFavoriteRepo implements api.FavoriteRepository for testing.
type mockFavoriteRepo struct {
	listFn       func(ctx context.Context, userID string) ([]models.Movie, error)
	isFavoriteFn func(ctx context.Context, userID, movieID string) (bool, error)
	toggleFn     func(ctx context.Context, userID, movieID string) (bool, error)
}

func (m *mockFavoriteRepo) ListFavorites(ctx context.Context, userID string) ([]models.Movie, error) {
	return m.listFn(ctx, userID)
}

func (m *mockFavoriteRepo) IsFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	return m.isFavoriteFn(ctx, userID, movieID)
}

func (m *mockFavoriteRepo) ToggleFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	return m.toggleFn(ctx, userID, movieID)
}

// mockRecommender implements api.Recommender for testing.
type mockRecommender struct {
	recommendFn func(ctx context.Context, userID string, limit int) []models.Recommendation
	opinionFn   func(ctx context.Context, movieID string) string
}

func (m *mockRecommender) Recommend(ctx context.Context, userID string, limit int) []models.Recommendation {
	return m.recommendFn(ctx, userID, limit)
}

func (m *mockRecommender) Opinion(ctx context.Context, movieID string) string {
	return m.opinionFn(ctx, movieID)
}

// mockPinger implements api.StorePinger for testing.
type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.pingFn(ctx)
}

// mockLoader implements api.SampleLoader for testing.
type mockLoader struct {
	addFn func(ctx context.Context, movie models.Movie) error
}

func (m *mockLoader) AddMovie(ctx context.Context, movie models.Movie) error {
	return m.addFn(ctx, movie)
}
