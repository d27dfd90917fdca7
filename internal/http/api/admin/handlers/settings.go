package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/store"
)

// SettingsHandler manages the singleton business settings row.
type SettingsHandler struct {
	store *store.Store // Content data access.
}

// NewSettingsHandler constructs a settings handler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Get returns the business settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	row, errGet := h.store.GetBusinessSettings(c.Request.Context())
	if errGet != nil {
		respondStoreError(c, errGet, "fetch business settings failed")
		return
	}
	c.JSON(http.StatusOK, view.BusinessSettings(row))
}

// updateSettingsRequest captures the settings payload.
type updateSettingsRequest struct {
	PhoneNumber    string `json:"phone_number"`    // Digits only.
	PhoneFormatted string `json:"phone_formatted"` // Display string.
	PhoneLink      string `json:"phone_link"`      // Dial URI.
	Email          string `json:"email"`           // Contact email.
}

// Update upserts the business settings row.
func (h *SettingsHandler) Update(c *gin.Context) {
	var body updateSettingsRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	row, errUpsert := h.store.UpsertBusinessSettings(c.Request.Context(), store.BusinessSettingsInput{
		PhoneNumber:    body.PhoneNumber,
		PhoneFormatted: body.PhoneFormatted,
		PhoneLink:      body.PhoneLink,
		Email:          body.Email,
	})
	if errUpsert != nil {
		respondStoreError(c, errUpsert, "update business settings failed")
		return
	}
	c.JSON(http.StatusOK, view.BusinessSettings(row))
}
