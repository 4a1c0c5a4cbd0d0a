package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// RecommendationHandler serves the recommendation endpoint.
type RecommendationHandler struct {
	recommender  Recommender
	log          *logrus.Logger
	defaultLimit int
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(recommender Recommender, log *logrus.Logger, defaultLimit int) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender, log: log, defaultLimit: defaultLimit}
}

// Get handles GET /api/v1/recommendations?user_id=&limit=.
// Recommendations are best-effort: store trouble yields an empty list, not
// an error response.
func (h *RecommendationHandler) Get(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, models.ErrMissingUserID.Error())

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "0"), h.defaultLimit)

	recommendations := h.recommender.Recommend(c.Request.Context(), userID, limit)

	h.log.WithFields(logrus.Fields{
		"action": "recommend", "user_id": userID, "count": len(recommendations),
	}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
