package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/pricing"
	"github.com/thedetailproz/site-backend/internal/store"
)

// PricingHandler manages per-size package pricing.
type PricingHandler struct {
	store *store.Store // Content data access.
}

// NewPricingHandler constructs a pricing handler.
func NewPricingHandler(st *store.Store) *PricingHandler {
	return &PricingHandler{store: st}
}

// pricingRequest captures the upsert payload.
type pricingRequest struct {
	PackageID     string  `json:"package_id"`      // Target package.
	VehicleSizeID string  `json:"vehicle_size_id"` // Target size class.
	Price         float64 `json:"price"`           // Price in dollars, zero clears it.
}

// List returns all pricing rows plus a per-package range summary.
func (h *PricingHandler) List(c *gin.Context) {
	rows, errList := h.store.ListPackagePricing(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList, "list package pricing failed")
		return
	}
	packages, errPackages := h.store.ListServicePackages(c.Request.Context())
	if errPackages != nil {
		respondStoreError(c, errPackages, "list service packages failed")
		return
	}

	summaries := make(gin.H, len(packages))
	for i := range packages {
		summaries[packages[i].ID] = pricing.RangeSummary(rows, packages[i].ID)
	}
	c.JSON(http.StatusOK, gin.H{
		"pricing": view.PackagePricings(rows),
		"ranges":  summaries,
	})
}

// Upsert writes the price for a (package, vehicle size) pair and returns the
// refreshed list. Repeating the same pair updates the existing row.
func (h *PricingHandler) Upsert(c *gin.Context) {
	var body pricingRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errUpsert := h.store.UpsertPackagePricing(c.Request.Context(), body.PackageID, body.VehicleSizeID, body.Price)
	if errUpsert != nil {
		respondStoreError(c, errUpsert, "upsert package pricing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": view.PackagePricings(rows)})
}
