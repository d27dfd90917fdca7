package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/reviews"

	log "github.com/sirupsen/logrus"
)

// ReviewHandler triggers Google review imports.
type ReviewHandler struct {
	importer *reviews.Importer // Review import pipeline, may be nil.
}

// NewReviewHandler constructs a review handler.
func NewReviewHandler(importer *reviews.Importer) *ReviewHandler {
	return &ReviewHandler{importer: importer}
}

// Import runs one import pass and reports how many reviews were staged.
func (h *ReviewHandler) Import(c *gin.Context) {
	result, errRun := h.importer.Run(c.Request.Context())
	if errRun != nil {
		switch {
		case errors.Is(errRun, reviews.ErrNotConfigured):
			c.JSON(http.StatusConflict, gin.H{"error": "google places is not configured"})
		case errors.Is(errRun, reviews.ErrImport):
			log.WithError(errRun).Error("review import failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "google places request failed"})
		default:
			log.WithError(errRun).Error("review import failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "review import failed"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
