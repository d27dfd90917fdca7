package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/store"
)

// TestimonialHandler manages admin CRUD for testimonials.
type TestimonialHandler struct {
	store *store.Store // Content data access.
}

// NewTestimonialHandler constructs a testimonial handler.
func NewTestimonialHandler(st *store.Store) *TestimonialHandler {
	return &TestimonialHandler{store: st}
}

// testimonialRequest captures the create/update payload.
type testimonialRequest struct {
	Name           string `json:"name"`             // Customer name.
	Location       string `json:"location"`         // Customer location label.
	Rating         int    `json:"rating"`           // Star rating, 1-5.
	Text           string `json:"text"`             // Review body.
	Avatar         string `json:"image"`            // Avatar image URL.
	Source         string `json:"source"`           // google or manual.
	GoogleReviewID string `json:"google_review_id"` // External review id.
	IsPublished    bool   `json:"is_published"`     // Visible on the public site.
	DisplayDate    string `json:"date"`             // Relative date label.
	OrderIndex     int    `json:"order_index"`      // Display ordering weight.
}

// input converts the payload to a store input.
func (r testimonialRequest) input() store.TestimonialInput {
	return store.TestimonialInput{
		Name:           r.Name,
		Location:       r.Location,
		Rating:         r.Rating,
		Text:           r.Text,
		Avatar:         r.Avatar,
		Source:         models.TestimonialSource(r.Source),
		GoogleReviewID: r.GoogleReviewID,
		IsPublished:    r.IsPublished,
		DisplayDate:    r.DisplayDate,
		OrderIndex:     r.OrderIndex,
	}
}

// List returns all testimonials in display order, drafts included.
func (h *TestimonialHandler) List(c *gin.Context) {
	rows, errList := h.store.ListTestimonials(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList, "list testimonials failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": view.Testimonials(rows)})
}

// Create inserts a testimonial and returns the refreshed list.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var body testimonialRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errCreate := h.store.CreateTestimonial(c.Request.Context(), body.input())
	if errCreate != nil {
		respondStoreError(c, errCreate, "create testimonial failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"testimonials": view.Testimonials(rows)})
}

// Update replaces a testimonial and returns the refreshed list.
func (h *TestimonialHandler) Update(c *gin.Context) {
	var body testimonialRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errUpdate := h.store.UpdateTestimonial(c.Request.Context(), c.Param("id"), body.input())
	if errUpdate != nil {
		respondStoreError(c, errUpdate, "update testimonial failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": view.Testimonials(rows)})
}

// Delete removes a testimonial and returns the refreshed list.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	rows, errDelete := h.store.DeleteTestimonial(c.Request.Context(), c.Param("id"))
	if errDelete != nil {
		respondStoreError(c, errDelete, "delete testimonial failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": view.Testimonials(rows)})
}
