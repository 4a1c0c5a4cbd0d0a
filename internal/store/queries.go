package store

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cinegraph/cinegraph/internal/models"
)

// prefixes is prepended to every query and update.
const prefixes = `PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX ex: <http://example.org/movies#>
`

// similarMoviesLimit caps the similarity query result set.
const similarMoviesLimit = 10

// localNameRe matches identifiers that are safe to embed as the local part
// of an ex:movie_<id> or ex:user_<id> URI.
var localNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validID rejects identifiers that cannot be embedded into a resource URI.
func validID(field, id string) error {
	if !localNameRe.MatchString(id) {
		return models.ErrInvalidID(field, id)
	}

	return nil
}

// escapeLiteral makes a free-text value safe for embedding into a quoted
// SPARQL string literal.
func escapeLiteral(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
	)

	return r.Replace(s)
}

// formatRating validates a rating is a plain finite number and renders it as
// a SPARQL numeric literal.
func formatRating(rating float64) (string, error) {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return "", fmt.Errorf("rating is not a finite number")
	}

	return strconv.FormatFloat(rating, 'f', -1, 64), nil
}

// allMoviesQuery returns the full catalog ordered by rating descending,
// title ascending.
func allMoviesQuery() string {
	return prefixes + `
SELECT DISTINCT ?movie ?title ?director ?genre ?rating
WHERE {
    ?movie rdf:type ex:Movie ;
           ex:title ?title ;
           ex:director ?director ;
           ex:genre ?genre ;
           ex:rating ?rating .
}
ORDER BY DESC(?rating) ?title`
}

// movieByIDQuery returns zero or one row with the movie's attributes.
func movieByIDQuery(movieID string) (string, error) {
	if err := validID("movie_id", movieID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
SELECT ?title ?director ?genre ?rating
WHERE {
    ex:movie_%s rdf:type ex:Movie ;
                ex:title ?title ;
                ex:director ?director ;
                ex:genre ?genre ;
                ex:rating ?rating .
}`, movieID), nil
}

// favoritesQuery returns all movies linked to the user via ex:hasFavorite.
func favoritesQuery(userID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?movie ?title ?director ?genre ?rating
WHERE {
    ex:user_%s ex:hasFavorite ?movie .
    ?movie rdf:type ex:Movie ;
           ex:title ?title ;
           ex:director ?director ;
           ex:genre ?genre ;
           ex:rating ?rating .
}
ORDER BY ?title`, userID), nil
}

// isFavoriteQuery is true iff the favorite edge exists.
func isFavoriteQuery(userID, movieID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	if err := validID("movie_id", movieID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
ASK { ex:user_%s ex:hasFavorite ex:movie_%s }`, userID, movieID), nil
}

// addMovieUpdate inserts one movie node with all four attributes in a single
// write.
func addMovieUpdate(m models.Movie) (string, error) {
	if err := validID("movie_id", m.ID); err != nil {
		return "", err
	}

	rating, err := formatRating(m.Rating)
	if err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
INSERT DATA {
    ex:movie_%s rdf:type ex:Movie ;
                ex:title "%s" ;
                ex:director "%s" ;
                ex:genre "%s" ;
                ex:rating %s .
}`, m.ID, escapeLiteral(m.Title), escapeLiteral(m.Director), escapeLiteral(m.Genre), rating), nil
}

// userExistsQuery is true iff the user node exists.
func userExistsQuery(userID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
ASK { ex:user_%s rdf:type ex:User }`, userID), nil
}

// insertUserUpdate creates the user node.
func insertUserUpdate(userID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
INSERT DATA { ex:user_%s rdf:type ex:User . }`, userID), nil
}

// addFavoriteUpdate inserts exactly one favorite edge.
func addFavoriteUpdate(userID, movieID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	if err := validID("movie_id", movieID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
INSERT DATA { ex:user_%s ex:hasFavorite ex:movie_%s . }`, userID, movieID), nil
}

// removeFavoriteUpdate deletes exactly one favorite edge. Deleting an absent
// edge is a no-op at the store level.
func removeFavoriteUpdate(userID, movieID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	if err := validID("movie_id", movieID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
DELETE DATA { ex:user_%s ex:hasFavorite ex:movie_%s . }`, userID, movieID), nil
}

// genreHistogramQuery groups the user's favorites by genre, most frequent
// first.
func genreHistogramQuery(userID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
SELECT ?genre (COUNT(?movie) AS ?count)
WHERE {
    ex:user_%s ex:hasFavorite ?movie .
    ?movie ex:genre ?genre .
}
GROUP BY ?genre
ORDER BY DESC(?count)`, userID), nil
}

// directorHistogramQuery groups the user's favorites by director, most
// frequent first.
func directorHistogramQuery(userID string) (string, error) {
	if err := validID("user_id", userID); err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
SELECT ?director (COUNT(?movie) AS ?count)
WHERE {
    ex:user_%s ex:hasFavorite ?movie .
    ?movie ex:director ?director .
}
GROUP BY ?director
ORDER BY DESC(?count)`, userID), nil
}

// literalDisjunction renders "?var = '...' || ?var = '...'" over the given
// values. An empty list degenerates to "true": no restriction at all, which
// is the intended fallback behavior when the user has no preference signal.
func literalDisjunction(variable string, values []string) string {
	if len(values) == 0 {
		return "true"
	}

	clauses := make([]string, 0, len(values))
	for _, v := range values {
		clauses = append(clauses, fmt.Sprintf(`?%s = "%s"`, variable, escapeLiteral(v)))
	}

	return strings.Join(clauses, " || ")
}

// similarMoviesQuery selects distinct movies matching any candidate genre or
// director, at or above the rating floor, excluding the user's favorites.
func similarMoviesQuery(q models.SimilarMoviesQuery) (string, error) {
	if err := validID("user_id", q.UserID); err != nil {
		return "", err
	}

	minRating, err := formatRating(q.MinRating)
	if err != nil {
		return "", err
	}

	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?movie ?title ?director ?genre ?rating
WHERE {
    ?movie rdf:type ex:Movie ;
           ex:title ?title ;
           ex:director ?director ;
           ex:genre ?genre ;
           ex:rating ?rating .
    FILTER NOT EXISTS { ex:user_%s ex:hasFavorite ?movie }
    FILTER((%s) || (%s))
    FILTER(?rating >= %s)
}
ORDER BY DESC(?rating)
LIMIT %d`,
		q.UserID,
		literalDisjunction("genre", q.Genres),
		literalDisjunction("director", q.Directors),
		minRating,
		similarMoviesLimit), nil
}
