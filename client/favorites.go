package client

import (
	"context"
	"net/url"
)

// FavoriteService handles favorite-edge operations.
type FavoriteService struct {
	c *Client
}

// toggleFavoriteRequest is the toggle payload.
type toggleFavoriteRequest struct {
	UserID  string `json:"user_id"`
	MovieID string `json:"movie_id"`
}

// toggleFavoriteResponse is the toggle result.
type toggleFavoriteResponse struct {
	NowFavorite bool `json:"now_favorite"`
}

// isFavoriteResponse is the favorite check result.
type isFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// favoritesListResponse wraps the favorites list.
type favoritesListResponse struct {
	Favorites []Movie `json:"favorites"`
}

// List returns the user's favorited movies.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]Movie, error) {
	params := url.Values{"user_id": {userID}}
	var resp favoritesListResponse
	if err := s.c.get(ctx, "/api/v1/favorites", params, &resp); err != nil {
		return nil, err
	}
	return resp.Favorites, nil
}

// Toggle flips the favorite edge and returns the new state.
func (s *FavoriteService) Toggle(ctx context.Context, userID, movieID string) (bool, error) {
	var resp toggleFavoriteResponse
	req := toggleFavoriteRequest{UserID: userID, MovieID: movieID}
	if err := s.c.post(ctx, "/api/v1/favorites/toggle", req, &resp); err != nil {
		return false, err
	}
	return resp.NowFavorite, nil
}

// IsFavorite reports whether the user has favorited the movie.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	params := url.Values{"user_id": {userID}}
	var resp isFavoriteResponse
	if err := s.c.get(ctx, "/api/v1/movies/"+url.PathEscape(movieID)+"/favorite", params, &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}
