package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/store"
)

// PackageHandler manages admin CRUD for service packages.
type PackageHandler struct {
	store *store.Store // Content data access.
}

// NewPackageHandler constructs a package handler.
func NewPackageHandler(st *store.Store) *PackageHandler {
	return &PackageHandler{store: st}
}

// packageRequest captures the create/update payload.
type packageRequest struct {
	Name       string   `json:"name"`        // Package name.
	PriceRange string   `json:"price"`       // Legacy display price range.
	Popular    bool     `json:"popular"`     // Highlighted on the grid.
	Interior   []string `json:"interior"`    // Interior feature list.
	Exterior   []string `json:"exterior"`    // Exterior feature list.
	OrderIndex int      `json:"order_index"` // Display ordering weight.
}

// input converts the payload to a store input.
func (r packageRequest) input() store.ServicePackageInput {
	return store.ServicePackageInput{
		Name:       r.Name,
		PriceRange: r.PriceRange,
		Popular:    r.Popular,
		Interior:   r.Interior,
		Exterior:   r.Exterior,
		OrderIndex: r.OrderIndex,
	}
}

// List returns all packages in display order.
func (h *PackageHandler) List(c *gin.Context) {
	rows, errList := h.store.ListServicePackages(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList, "list service packages failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": view.ServicePackages(rows)})
}

// Create inserts a package and returns the refreshed list.
func (h *PackageHandler) Create(c *gin.Context) {
	var body packageRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errCreate := h.store.CreateServicePackage(c.Request.Context(), body.input())
	if errCreate != nil {
		respondStoreError(c, errCreate, "create service package failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"packages": view.ServicePackages(rows)})
}

// Update replaces a package and returns the refreshed list.
func (h *PackageHandler) Update(c *gin.Context) {
	var body packageRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errUpdate := h.store.UpdateServicePackage(c.Request.Context(), c.Param("id"), body.input())
	if errUpdate != nil {
		respondStoreError(c, errUpdate, "update service package failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": view.ServicePackages(rows)})
}

// Delete removes a package and returns the refreshed list.
func (h *PackageHandler) Delete(c *gin.Context) {
	rows, errDelete := h.store.DeleteServicePackage(c.Request.Context(), c.Param("id"))
	if errDelete != nil {
		respondStoreError(c, errDelete, "delete service package failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": view.ServicePackages(rows)})
}
