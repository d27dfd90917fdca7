package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/store"
)

// VehicleSizeHandler manages admin CRUD for vehicle size categories.
type VehicleSizeHandler struct {
	store *store.Store // Content data access.
}

// NewVehicleSizeHandler constructs a vehicle size handler.
func NewVehicleSizeHandler(st *store.Store) *VehicleSizeHandler {
	return &VehicleSizeHandler{store: st}
}

// vehicleSizeRequest captures the create/update payload.
type vehicleSizeRequest struct {
	Name         string `json:"name"`          // Category label.
	DisplayOrder int    `json:"display_order"` // Display ordering weight.
}

// List returns all vehicle sizes in display order.
func (h *VehicleSizeHandler) List(c *gin.Context) {
	rows, errList := h.store.ListVehicleSizes(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList, "list vehicle sizes failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle_sizes": view.VehicleSizes(rows)})
}

// Create inserts a vehicle size and returns the refreshed list.
func (h *VehicleSizeHandler) Create(c *gin.Context) {
	var body vehicleSizeRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errCreate := h.store.CreateVehicleSize(c.Request.Context(), store.VehicleSizeInput{
		Name:         body.Name,
		DisplayOrder: body.DisplayOrder,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate, "create vehicle size failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle_sizes": view.VehicleSizes(rows)})
}

// Update replaces a vehicle size and returns the refreshed list.
func (h *VehicleSizeHandler) Update(c *gin.Context) {
	var body vehicleSizeRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errUpdate := h.store.UpdateVehicleSize(c.Request.Context(), c.Param("id"), store.VehicleSizeInput{
		Name:         body.Name,
		DisplayOrder: body.DisplayOrder,
	})
	if errUpdate != nil {
		respondStoreError(c, errUpdate, "update vehicle size failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle_sizes": view.VehicleSizes(rows)})
}

// Delete removes a vehicle size and returns the refreshed list.
func (h *VehicleSizeHandler) Delete(c *gin.Context) {
	rows, errDelete := h.store.DeleteVehicleSize(c.Request.Context(), c.Param("id"))
	if errDelete != nil {
		respondStoreError(c, errDelete, "delete vehicle size failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle_sizes": view.VehicleSizes(rows)})
}
