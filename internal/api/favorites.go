package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// FavoriteHandler serves favorite-edge endpoints.
type FavoriteHandler struct {
	repo FavoriteRepository
	log  *logrus.Logger
}

// NewFavoriteHandler creates a FavoriteHandler with the given service and logger.
func NewFavoriteHandler(repo FavoriteRepository, log *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{repo: repo, log: log}
}

// List handles GET /api/v1/favorites?user_id=.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, models.ErrMissingUserID.Error())

		return
	}

	movies, err := h.repo.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("listing favorites")
		respondStoreError(c, err)

		return
	}

	h.log.WithFields(logrus.Fields{"action": "favorite.list", "user_id": userID, "count": len(movies)}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"favorites": movies})
}

// IsFavorite handles GET /api/v1/movies/:id/favorite?user_id=.
func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	movieID := c.Param("id")
	if err := validatePathID(movieID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, models.ErrMissingUserID.Error())

		return
	}

	fav, err := h.repo.IsFavorite(c.Request.Context(), userID, movieID)
	if err != nil {
		h.log.WithError(err).Error("checking favorite")
		respondStoreError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": fav})
}

// Toggle handles POST /api/v1/favorites/toggle.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req models.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	nowFavorite, err := h.repo.ToggleFavorite(c.Request.Context(), req.UserID, req.MovieID)
	if err != nil {
		h.log.WithError(err).Error("toggling favorite")
		respondStoreError(c, err)

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "favorite.toggle", "user_id": req.UserID,
		"movie_id": req.MovieID, "now_favorite": nowFavorite,
	}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"now_favorite": nowFavorite})
}
