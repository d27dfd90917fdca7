package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/content"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/pricing"
	"github.com/thedetailproz/site-backend/internal/store"

	log "github.com/sirupsen/logrus"
)

// ContentHandler serves the public site content. When no content database is
// configured, or a read fails, it falls back to the built-in defaults so the
// site always renders.
type ContentHandler struct {
	store *store.Store // Content data access, may be unavailable.
}

// NewContentHandler constructs a content handler.
func NewContentHandler(st *store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

// Settings returns the business contact settings.
func (h *ContentHandler) Settings(c *gin.Context) {
	row := content.DefaultBusinessSettings()
	if h.store.Available() {
		stored, errGet := h.store.GetBusinessSettings(c.Request.Context())
		if errGet != nil {
			log.WithError(errGet).Warn("falling back to default business settings")
		} else {
			row = stored
		}
	}
	c.JSON(http.StatusOK, view.BusinessSettings(row))
}

// Packages returns the service packages together with the vehicle size
// classes and the resolved display price for every (package, size) pair.
func (h *ContentHandler) Packages(c *gin.Context) {
	packages := content.DefaultServicePackages()
	sizes := content.DefaultVehicleSizes()
	var rows []models.PackagePricing

	if h.store.Available() {
		ctx := c.Request.Context()
		storedPackages, errPackages := h.store.ListServicePackages(ctx)
		storedSizes, errSizes := h.store.ListVehicleSizes(ctx)
		storedRows, errRows := h.store.ListPackagePricing(ctx)
		if errPackages != nil || errSizes != nil || errRows != nil {
			log.Warn("falling back to default service packages")
		} else {
			packages, sizes, rows = storedPackages, storedSizes, storedRows
		}
	}

	rendered := make([]gin.H, 0, len(packages))
	for i := range packages {
		item := view.ServicePackage(packages[i])
		prices := make(gin.H, len(sizes))
		for j := range sizes {
			prices[sizes[j].ID] = pricing.Resolve(packages, rows, packages[i].ID, sizes[j].ID)
		}
		item["prices"] = prices
		rendered = append(rendered, item)
	}

	payload := gin.H{
		"packages":      rendered,
		"vehicle_sizes": view.VehicleSizes(sizes),
	}
	if defaultSize, ok := pricing.DefaultVehicleSize(sizes); ok {
		payload["default_vehicle_size"] = defaultSize.ID
	}
	c.JSON(http.StatusOK, payload)
}

// Gallery returns the gallery images in display order.
func (h *ContentHandler) Gallery(c *gin.Context) {
	rows := content.DefaultGalleryImages()
	if h.store.Available() {
		stored, errList := h.store.ListGalleryImages(c.Request.Context())
		if errList != nil {
			log.WithError(errList).Warn("falling back to default gallery")
		} else {
			rows = stored
		}
	}
	c.JSON(http.StatusOK, gin.H{"images": view.GalleryImages(rows)})
}

// Testimonials returns published testimonials only.
func (h *ContentHandler) Testimonials(c *gin.Context) {
	rows := content.DefaultTestimonials()
	if h.store.Available() {
		stored, errList := h.store.ListPublishedTestimonials(c.Request.Context())
		if errList != nil {
			log.WithError(errList).Warn("falling back to default testimonials")
		} else {
			rows = stored
		}
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": view.Testimonials(rows)})
}
