// Package sampledata seeds the catalog with a small set of well-known movies
// for demos and local development.
package sampledata

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// Movies is the built-in sample catalog.
var Movies = []models.AddMovieRequest{
	{Title: "Inception", Director: "Christopher Nolan", Genre: "Sci-Fi", Rating: 4.8},
	{Title: "Titanic", Director: "James Cameron", Genre: "Romance", Rating: 4.7},
	{Title: "The Dark Knight", Director: "Christopher Nolan", Genre: "Action", Rating: 4.9},
	{Title: "Forrest Gump", Director: "Robert Zemeckis", Genre: "Drama", Rating: 4.6},
	{Title: "The Matrix", Director: "Lana Wachowski, Lilly Wachowski", Genre: "Sci-Fi", Rating: 4.8},
	{Title: "Pulp Fiction", Director: "Quentin Tarantino", Genre: "Crime", Rating: 4.7},
	{Title: "La La Land", Director: "Damien Chazelle", Genre: "Musical", Rating: 4.3},
	{Title: "El laberinto del fauno", Director: "Guillermo del Toro", Genre: "Fantasy", Rating: 4.5},
	{Title: "Avengers: Endgame", Director: "Anthony Russo, Joe Russo", Genre: "Action", Rating: 4.4},
	{Title: "Coco", Director: "Lee Unkrich, Adrian Molina", Genre: "Animation", Rating: 4.6},
	{Title: "Parasite", Director: "Bong Joon-ho", Genre: "Thriller", Rating: 4.7},
	{Title: "Amélie", Director: "Jean-Pierre Jeunet", Genre: "Romance", Rating: 4.4},
	{Title: "Gladiator", Director: "Ridley Scott", Genre: "Action", Rating: 4.5},
	{Title: "Toy Story", Director: "John Lasseter", Genre: "Animation", Rating: 4.3},
	{Title: "El secreto de sus ojos", Director: "Juan José Campanella", Genre: "Crime", Rating: 4.6},
}

// MovieWriter is the minimal store interface the loader needs.
type MovieWriter interface {
	AddMovie(ctx context.Context, movie models.Movie) error
}

// Load writes the sample catalog to the store sequentially and returns the
// number of movies inserted. IDs combine the creation timestamp with a title
// slug so repeated loads within the same millisecond stay unique.
func Load(ctx context.Context, store MovieWriter, log *logrus.Logger) (int, error) {
	loaded := 0
	for _, req := range Movies {
		movie := models.Movie{
			ID:       models.NewMovieID(time.Now()) + models.SlugSuffix(req.Title),
			Title:    req.Title,
			Director: req.Director,
			Genre:    req.Genre,
			Rating:   req.Rating,
		}

		if err := store.AddMovie(ctx, movie); err != nil {
			return loaded, fmt.Errorf("loading sample %q: %w", req.Title, err)
		}

		log.WithField("title", movie.Title).Debug("sample movie loaded")
		loaded++
	}

	return loaded, nil
}
