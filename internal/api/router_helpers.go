package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/middleware"
	"github.com/cinegraph/cinegraph/internal/models"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxRecommendLimit caps the per-request recommendation limit.
const maxRecommendLimit = 50

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxRecommendLimit {
		return maxRecommendLimit
	}

	return v
}

// validatePathID checks that a path parameter ID is non-empty and within length limits.
func validatePathID(id string) error {
	if id == "" {
		return fmt.Errorf("id must not be empty")
	}
	if len(id) > 255 {
		return fmt.Errorf("id exceeds maximum length of 255")
	}
	return nil
}

// respondStoreError maps service errors to HTTP responses: validation errors
// become 400s, store transport failures 503s, anything else a 500.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		respondError(c, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "graph store unavailable")
	default:
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}

// isValidationError reports whether err is one of the input validation
// sentinels (including invalid-ID errors raised by the query builder).
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		models.ErrMissingTitle, models.ErrMissingDirector, models.ErrMissingGenre,
		models.ErrMissingUserID, models.ErrMissingMovieID, models.ErrRatingOutOfRange,
		models.ErrInvalidIdentifier,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
