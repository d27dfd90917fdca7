package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/store"
)

// respondStoreError maps data-layer errors onto HTTP statuses. Validation
// details are safe to echo; everything else gets the generic message.
func respondStoreError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}

// validationMessage strips the package prefix from a validation error.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
