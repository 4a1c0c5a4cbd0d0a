package service

import (
	"strings"
	"testing"

	"github.com/cinegraph/cinegraph/internal/models"
)

func TestRatingSentence(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{5.0, "It's an exceptional movie you can't afford to miss."},
		{4.5, "It's an exceptional movie you can't afford to miss."},
		{4.4, "It's a very good movie that is worth watching."},
		{4.0, "It's a very good movie that is worth watching."},
		{3.7, "It's an entertaining movie that may appeal to you."},
		{3.5, "It's an entertaining movie that may appeal to you."},
		{3.2, "It's a decent movie, though it has its ups and downs."},
		{3.0, "It's a decent movie, though it has its ups and downs."},
		{2.9, lowestBandSentence},
		{1.0, lowestBandSentence},
	}
	for _, tt := range tests {
		if got := ratingSentence(tt.rating); got != tt.want {
			t.Errorf("ratingSentence(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestOpinionText(t *testing.T) {
	got := OpinionText(models.Movie{Title: "Get Out", Genre: "Horror", Rating: 4.3})
	want := "This is a Horror movie. It's a very good movie that is worth watching. It will keep you on the edge of your seat with its tense moments."
	if got != want {
		t.Errorf("opinion = %q, want %q", got, want)
	}
}

func TestOpinionTextUnknownGenre(t *testing.T) {
	got := OpinionText(models.Movie{Title: "Koyaanisqatsi", Genre: "Documentary", Rating: 4.2})
	if !strings.HasPrefix(got, "This is a Documentary movie.") {
		t.Errorf("opinion = %q, want Documentary prefix", got)
	}
	// No flavor sentence for an unrecognized genre.
	if !strings.HasSuffix(got, "It's a very good movie that is worth watching.") {
		t.Errorf("opinion = %q, want rating sentence suffix", got)
	}
}

func TestOpinionTextDeterministic(t *testing.T) {
	movie := models.Movie{Title: "Alien", Genre: "Sci-Fi", Rating: 4.5}
	if OpinionText(movie) != OpinionText(movie) {
		t.Error("same movie produced different opinions")
	}
}
