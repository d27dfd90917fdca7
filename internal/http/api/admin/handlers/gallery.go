package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/http/api/view"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/storage"
	"github.com/thedetailproz/site-backend/internal/store"
)

// maxUploadBytes caps a single gallery upload.
const maxUploadBytes = 10 << 20

// GalleryHandler manages admin CRUD and uploads for gallery images.
type GalleryHandler struct {
	store   *store.Store        // Content data access.
	objects storage.ObjectStore // Upload target, may be nil.
}

// NewGalleryHandler constructs a gallery handler.
func NewGalleryHandler(st *store.Store, objects storage.ObjectStore) *GalleryHandler {
	return &GalleryHandler{store: st, objects: objects}
}

// galleryRequest captures the create/update payload.
type galleryRequest struct {
	URL        string `json:"url"`         // Public image URL.
	AltText    string `json:"alt"`         // Accessibility text.
	Category   string `json:"category"`    // before/after/process.
	OrderIndex int    `json:"order_index"` // Display ordering weight.
}

// input converts the payload to a store input.
func (r galleryRequest) input() store.GalleryImageInput {
	return store.GalleryImageInput{
		URL:        r.URL,
		AltText:    r.AltText,
		Category:   models.GalleryCategory(r.Category),
		OrderIndex: r.OrderIndex,
	}
}

// List returns all gallery images in display order.
func (h *GalleryHandler) List(c *gin.Context) {
	rows, errList := h.store.ListGalleryImages(c.Request.Context())
	if errList != nil {
		respondStoreError(c, errList, "list gallery images failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": view.GalleryImages(rows)})
}

// Create inserts an image record for an externally hosted URL and returns the
// refreshed list.
func (h *GalleryHandler) Create(c *gin.Context) {
	var body galleryRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errCreate := h.store.CreateGalleryImage(c.Request.Context(), body.input())
	if errCreate != nil {
		respondStoreError(c, errCreate, "create gallery image failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"images": view.GalleryImages(rows)})
}

// Upload receives a multipart image file, stores it, and inserts the record
// pointing at the stored object.
func (h *GalleryHandler) Upload(c *gin.Context) {
	if h.objects == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "file storage is not configured"})
		return
	}

	fileHeader, errFile := c.FormFile("file")
	if errFile != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	category := models.GalleryCategory(c.PostForm("category"))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", c.PostForm("category"))})
		return
	}
	orderIndex, _ := strconv.Atoi(c.PostForm("order_index"))

	src, errOpen := fileHeader.Open()
	if errOpen != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer func() { _ = src.Close() }()

	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	objectPath := fmt.Sprintf("%s/%d-%s%s", category, time.Now().UTC().Unix(), uuid.NewString(), ext)
	url, errSave := h.objects.Save(c.Request.Context(), objectPath, src)
	if errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store file failed"})
		return
	}

	rows, errCreate := h.store.CreateGalleryImage(c.Request.Context(), store.GalleryImageInput{
		URL:         url,
		AltText:     c.PostForm("alt"),
		Category:    category,
		OrderIndex:  orderIndex,
		StoragePath: objectPath,
	})
	if errCreate != nil {
		respondStoreError(c, errCreate, "create gallery image failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"images": view.GalleryImages(rows)})
}

// Update replaces an image's fields and returns the refreshed list.
func (h *GalleryHandler) Update(c *gin.Context) {
	var body galleryRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	rows, errUpdate := h.store.UpdateGalleryImage(c.Request.Context(), c.Param("id"), body.input())
	if errUpdate != nil {
		respondStoreError(c, errUpdate, "update gallery image failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": view.GalleryImages(rows)})
}

// Delete removes an image record along with its stored file and returns the
// refreshed list. A file-store failure never blocks the record deletion.
func (h *GalleryHandler) Delete(c *gin.Context) {
	rows, errDelete := h.store.DeleteGalleryImageWithFile(c.Request.Context(), c.Param("id"))
	if errDelete != nil {
		respondStoreError(c, errDelete, "delete gallery image failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": view.GalleryImages(rows)})
}
