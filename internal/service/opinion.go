package service

import (
	"fmt"

	"github.com/cinegraph/cinegraph/internal/models"
)

// Fixed fallback sentences for when no opinion can be formed.
const (
	// OpinionUnknownMovie is returned when the movie cannot be found.
	OpinionUnknownMovie = "I don't have enough information about this movie."

	// OpinionUnavailable is returned when the store cannot be reached.
	OpinionUnavailable = "Sorry, I can't offer an opinion right now."
)

// ratingBand pairs a rating floor with its sentence. Bands are checked in
// order; the first floor at or below the rating wins.
type ratingBand struct {
	floor    float64
	sentence string
}

var ratingBands = []ratingBand{
	{4.5, "It's an exceptional movie you can't afford to miss."},
	{4.0, "It's a very good movie that is worth watching."},
	{3.5, "It's an entertaining movie that may appeal to you."},
	{3.0, "It's a decent movie, though it has its ups and downs."},
}

// lowestBandSentence covers everything below the last floor.
const lowestBandSentence = "This movie may not suit everyone's taste."

// genreSentences holds the flavor sentence per known genre. Unrecognized
// genres simply get no extra sentence.
var genreSentences = map[string]string{
	"Action":  "Expect thrilling sequences and plenty of adrenaline.",
	"Drama":   "Prepare yourself for an emotional story and deep characters.",
	"Comedy":  "It will make you laugh and have a good time.",
	"Horror":  "It will keep you on the edge of your seat with its tense moments.",
	"Sci-Fi":  "It will take you to a world of imagination and possibilities.",
	"Romance": "It will wrap you up in a story of love and emotion.",
}

// ratingSentence returns the sentence for the movie's rating band.
func ratingSentence(rating float64) string {
	for _, band := range ratingBands {
		if rating >= band.floor {
			return band.sentence
		}
	}

	return lowestBandSentence
}

// OpinionText renders a templated opinion from a movie's genre and rating.
// It is a pure function: same movie, same sentence.
func OpinionText(movie models.Movie) string {
	opinion := fmt.Sprintf("This is a %s movie. %s", movie.Genre, ratingSentence(movie.Rating))

	if extra, ok := genreSentences[movie.Genre]; ok {
		opinion += " " + extra
	}

	return opinion
}
