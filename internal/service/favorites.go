package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/domain"
	"github.com/cinegraph/cinegraph/internal/models"
)

// FavoriteStore is the data-access interface FavoriteService depends on.
type FavoriteStore interface {
	ListFavorites(ctx context.Context, userID string) ([]models.Movie, error)
	IsFavorite(ctx context.Context, userID, movieID string) (bool, error)
	EnsureUser(ctx context.Context, userID string) error
	AddFavorite(ctx context.Context, userID, movieID string) error
	RemoveFavorite(ctx context.Context, userID, movieID string) error
}

// Compile-time check: *FavoriteService must satisfy domain.FavoriteService.
var _ domain.FavoriteService = (*FavoriteService)(nil)

// FavoriteService manages favorite edges between users and movies.
type FavoriteService struct {
	store FavoriteStore
	log   *logrus.Logger
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(store FavoriteStore, log *logrus.Logger) *FavoriteService {
	return &FavoriteService{store: store, log: log}
}

// ListFavorites returns the user's favorited movies (pass-through).
func (s *FavoriteService) ListFavorites(ctx context.Context, userID string) ([]models.Movie, error) {
	return s.store.ListFavorites(ctx, userID)
}

// IsFavorite reports whether the user has favorited the movie (pass-through).
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	return s.store.IsFavorite(ctx, userID, movieID)
}

// ToggleFavorite flips the favorite edge and returns the new state. This is
// a check-then-act sequence, not an atomic toggle: concurrent toggles for
// the same (user, movie) pair can race, which is accepted best-effort
// semantics. The user node is created on first favorite.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	fav, err := s.store.IsFavorite(ctx, userID, movieID)
	if err != nil {
		return false, err
	}

	if fav {
		if err := s.store.RemoveFavorite(ctx, userID, movieID); err != nil {
			return false, err
		}

		s.log.WithFields(logrus.Fields{"user_id": userID, "movie_id": movieID}).Info("favorite removed")

		return false, nil
	}

	if err := s.store.EnsureUser(ctx, userID); err != nil {
		return false, err
	}

	if err := s.store.AddFavorite(ctx, userID, movieID); err != nil {
		return false, err
	}

	s.log.WithFields(logrus.Fields{"user_id": userID, "movie_id": movieID}).Info("favorite added")

	return true, nil
}
