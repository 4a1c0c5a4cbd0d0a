package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/sampledata"
)

// AdminHandler serves administrative endpoints.
type AdminHandler struct {
	store SampleLoader
	log   *logrus.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(store SampleLoader, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{store: store, log: log}
}

// LoadSamples handles POST /api/v1/admin/load-samples.
func (h *AdminHandler) LoadSamples(c *gin.Context) {
	loaded, err := sampledata.Load(c.Request.Context(), h.store, h.log)
	if err != nil {
		h.log.WithError(err).WithField("loaded", loaded).Error("loading sample movies")
		respondStoreError(c, err)

		return
	}

	h.log.WithFields(logrus.Fields{"action": "admin.load_samples", "loaded": loaded}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"loaded": loaded})
}
