package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cinegraph/cinegraph/internal/models"
)

func TestAddMovie(t *testing.T) {
	var stored models.Movie
	store := &mockStore{
		addMovie: func(_ context.Context, movie models.Movie) error {
			stored = movie
			return nil
		},
	}
	svc := NewMovieService(store, testLogger())
	svc.now = func() time.Time { return time.UnixMilli(1718000000000) }

	movie, err := svc.AddMovie(context.Background(), models.AddMovieRequest{
		Title:    "  Dune  ",
		Director: "Denis Villeneuve",
		Genre:    "Sci-Fi",
		Rating:   4.4,
	})
	if err != nil {
		t.Fatalf("AddMovie error: %v", err)
	}
	if movie.ID != "1718000000000" {
		t.Errorf("ID = %q, want timestamp-derived %q", movie.ID, "1718000000000")
	}
	if movie.Title != "Dune" {
		t.Errorf("Title = %q, want trimmed %q", movie.Title, "Dune")
	}
	if stored != *movie {
		t.Errorf("stored %+v, returned %+v", stored, *movie)
	}
}

func TestAddMovieValidation(t *testing.T) {
	store := &mockStore{} // any store call would panic

	svc := NewMovieService(store, testLogger())

	tests := []struct {
		name string
		req  models.AddMovieRequest
		want error
	}{
		{"missing title", models.AddMovieRequest{Director: "d", Genre: "g", Rating: 3}, models.ErrMissingTitle},
		{"blank title", models.AddMovieRequest{Title: "   ", Director: "d", Genre: "g", Rating: 3}, models.ErrMissingTitle},
		{"missing director", models.AddMovieRequest{Title: "t", Genre: "g", Rating: 3}, models.ErrMissingDirector},
		{"missing genre", models.AddMovieRequest{Title: "t", Director: "d", Rating: 3}, models.ErrMissingGenre},
		{"rating too low", models.AddMovieRequest{Title: "t", Director: "d", Genre: "g", Rating: 0.5}, models.ErrRatingOutOfRange},
		{"rating too high", models.AddMovieRequest{Title: "t", Director: "d", Genre: "g", Rating: 5.5}, models.ErrRatingOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddMovie(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if len(store.calls) != 0 {
		t.Errorf("store called on invalid input: %v", store.calls)
	}
}

func TestAddMovieStoreFailure(t *testing.T) {
	store := &mockStore{
		addMovie: func(_ context.Context, _ models.Movie) error {
			return models.ErrStoreUnavailable
		},
	}
	svc := NewMovieService(store, testLogger())

	_, err := svc.AddMovie(context.Background(), models.AddMovieRequest{
		Title: "t", Director: "d", Genre: "g", Rating: 3,
	})
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
}
