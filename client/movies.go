package client

import (
	"context"
	"net/url"
)

// MovieService handles catalog operations.
type MovieService struct {
	c *Client
}

// movieListResponse wraps the catalog list response.
type movieListResponse struct {
	Movies []Movie `json:"movies"`
}

// List returns the catalog, best rated first.
func (s *MovieService) List(ctx context.Context) ([]Movie, error) {
	var resp movieListResponse
	if err := s.c.get(ctx, "/api/v1/movies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Get returns a single movie with its generated opinion.
func (s *MovieService) Get(ctx context.Context, id string) (*MovieDetails, error) {
	var details MovieDetails
	if err := s.c.get(ctx, "/api/v1/movies/"+url.PathEscape(id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Add creates a new movie; the server assigns the ID.
func (s *MovieService) Add(ctx context.Context, req *AddMovieRequest) (*Movie, error) {
	var movie Movie
	if err := s.c.post(ctx, "/api/v1/movies", req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
