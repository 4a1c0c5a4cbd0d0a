// Package service provides business logic between API handlers and the
// graph store.
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/domain"
	"github.com/cinegraph/cinegraph/internal/metrics"
	"github.com/cinegraph/cinegraph/internal/models"
)

// Preference short-list caps and the similarity rating floor.
const (
	topGenreCount    = 3
	topDirectorCount = 2

	// DefaultMinSimilarRating is the rating floor for similarity matches.
	DefaultMinSimilarRating = 3.5

	// DefaultRecommendLimit bounds a recommendation result.
	DefaultRecommendLimit = 5
)

// RecommendStore is the data-access interface the recommender depends on.
type RecommendStore interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*models.Movie, error)
	IsFavorite(ctx context.Context, userID, movieID string) (bool, error)
	GenreHistogram(ctx context.Context, userID string) ([]models.HistogramEntry, error)
	DirectorHistogram(ctx context.Context, userID string) ([]models.HistogramEntry, error)
	SimilarMovies(ctx context.Context, q models.SimilarMoviesQuery) ([]models.Movie, error)
}

// Compile-time check: *RecommendService must satisfy domain.Recommender.
var _ domain.Recommender = (*RecommendService)(nil)

// RecommendService turns a user's favorite set into weighted preference
// signals and produces a deduplicated, size-bounded recommendation list,
// falling back to top-rated-not-favorited movies when signal is weak.
type RecommendService struct {
	store        RecommendStore
	log          *logrus.Logger
	minRating    float64
	defaultLimit int
}

// NewRecommendService creates a RecommendService. Non-positive minRating or
// defaultLimit fall back to the package defaults.
func NewRecommendService(store RecommendStore, log *logrus.Logger, minRating float64, defaultLimit int) *RecommendService {
	if minRating <= 0 {
		minRating = DefaultMinSimilarRating
	}

	if defaultLimit <= 0 {
		defaultLimit = DefaultRecommendLimit
	}

	return &RecommendService{store: store, log: log, minRating: minRating, defaultLimit: defaultLimit}
}

// topLabels ranks histogram entries by count descending and returns up to n
// labels. The sort is stable, so ties keep the order the store returned.
func topLabels(entries []models.HistogramEntry, n int) []string {
	ranked := make([]models.HistogramEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	labels := make([]string, 0, len(ranked))
	for _, e := range ranked {
		labels = append(labels, e.Label)
	}

	return labels
}

// preferences fetches both histograms and reduces them to the top genres and
// directors. A histogram read failure is logged and treated as no signal.
func (s *RecommendService) preferences(ctx context.Context, userID string) (genres, directors []string) {
	genreHist, err := s.store.GenreHistogram(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("fetching genre preferences")
	}

	directorHist, err := s.store.DirectorHistogram(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("fetching director preferences")
	}

	return topLabels(genreHist, topGenreCount), topLabels(directorHist, topDirectorCount)
}

// topRatedNonFavorites scans the catalog, drops the user's favorites, and
// returns up to limit movies, best rated first. The catalog query already
// orders by rating descending, so order is preserved through the filter.
func (s *RecommendService) topRatedNonFavorites(ctx context.Context, userID string, limit int) ([]models.Movie, error) {
	all, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Movie, 0, len(all))
	for _, movie := range all {
		fav, err := s.store.IsFavorite(ctx, userID, movie.ID)
		if err != nil {
			return nil, err
		}

		if !fav {
			kept = append(kept, movie)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Rating > kept[j].Rating })

	if len(kept) > limit {
		kept = kept[:limit]
	}

	return kept, nil
}

// Recommend produces up to limit recommendations for the user. Similarity
// matches come first; top-rated non-favorites fill the remaining slots. Each
// movie appears at most once. Store failures degrade to an empty list.
func (s *RecommendService) Recommend(ctx context.Context, userID string, limit int) []models.Recommendation {
	if limit <= 0 || limit > s.defaultLimit {
		limit = s.defaultLimit
	}

	genres, directors := s.preferences(ctx, userID)

	var result []models.Recommendation
	seen := make(map[string]bool)

	if len(genres) > 0 || len(directors) > 0 {
		similar, err := s.store.SimilarMovies(ctx, models.SimilarMoviesQuery{
			UserID:    userID,
			Genres:    genres,
			Directors: directors,
			MinRating: s.minRating,
		})
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID).Error("similarity query failed")

			return []models.Recommendation{}
		}

		for _, movie := range similar {
			if len(result) == limit {
				break
			}

			if seen[movie.ID] {
				continue
			}

			seen[movie.ID] = true
			result = append(result, models.Recommendation{Movie: movie, Source: models.SourceSimilarity})
		}
	} else {
		s.log.WithField("user_id", userID).Info("no preference signal, using top-rated fallback")
	}

	if len(result) < limit {
		fallback, err := s.topRatedNonFavorites(ctx, userID, limit-len(result))
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID).Error("top-rated fallback failed")

			return []models.Recommendation{}
		}

		for _, movie := range fallback {
			if seen[movie.ID] {
				continue
			}

			seen[movie.ID] = true
			result = append(result, models.Recommendation{Movie: movie, Source: models.SourceTopRated})
		}
	}

	if result == nil {
		result = []models.Recommendation{}
	}

	for _, r := range result {
		metrics.RecommendationsTotal.WithLabelValues(r.Source).Inc()
	}

	return result
}

// Opinion renders a rule-based opinion for the movie. An unknown movie or a
// store failure yields a fixed sentence, never an error.
func (s *RecommendService) Opinion(ctx context.Context, movieID string) string {
	movie, err := s.store.GetMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, models.ErrMovieNotFound) {
			return OpinionUnknownMovie
		}

		s.log.WithError(err).WithField("movie_id", movieID).Warn("looking up movie for opinion")

		return OpinionUnavailable
	}

	return OpinionText(*movie)
}
