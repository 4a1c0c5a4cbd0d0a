package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// MovieHandler serves catalog endpoints.
type MovieHandler struct {
	repo        MovieRepository
	recommender Recommender
	log         *logrus.Logger
}

// NewMovieHandler creates a MovieHandler with the given service and logger.
func NewMovieHandler(repo MovieRepository, recommender Recommender, log *logrus.Logger) *MovieHandler {
	return &MovieHandler{repo: repo, recommender: recommender, log: log}
}

// List handles GET /api/v1/movies.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.repo.ListMovies(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing movies")
		respondStoreError(c, err)

		return
	}

	h.log.WithFields(logrus.Fields{"action": "movie.list", "count": len(movies)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

// Create handles POST /api/v1/movies.
func (h *MovieHandler) Create(c *gin.Context) {
	var req models.AddMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	movie, err := h.repo.AddMovie(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("adding movie")
		respondStoreError(c, err)

		return
	}

	h.log.WithFields(logrus.Fields{"action": "movie.create", "movie_id": movie.ID, "title": movie.Title}).Info("audit")

	c.JSON(http.StatusCreated, movie)
}

// movieDetailsResponse pairs a movie with its generated opinion.
type movieDetailsResponse struct {
	models.Movie
	Opinion string `json:"opinion"`
}

// Get handles GET /api/v1/movies/:id — details plus a generated opinion.
func (h *MovieHandler) Get(c *gin.Context) {
	movieID := c.Param("id")
	if err := validatePathID(movieID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	movie, err := h.repo.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, models.ErrMovieNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "movie not found")

			return
		}

		h.log.WithError(err).Error("getting movie")
		respondStoreError(c, err)

		return
	}

	h.log.WithFields(logrus.Fields{"action": "movie.get", "movie_id": movieID}).Info("audit")

	c.JSON(http.StatusOK, movieDetailsResponse{
		Movie:   *movie,
		Opinion: h.recommender.Opinion(c.Request.Context(), movieID),
	})
}
