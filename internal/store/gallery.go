package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm"

	log "github.com/sirupsen/logrus"
)

// GalleryImageInput carries caller-supplied gallery image fields.
type GalleryImageInput struct {
	URL         string                 // Public image URL.
	AltText     string                 // Accessibility text.
	Category    models.GalleryCategory // before/after/process.
	OrderIndex  int                    // Display ordering weight.
	StoragePath string                 // File-store key for uploads, may be empty.
}

// ListGalleryImages returns all gallery images ordered for display.
func (s *Store) ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	var rows []models.GalleryImage
	errFind := s.db.WithContext(ctx).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: list gallery images: %w", errFind)
	}
	return rows, nil
}

// CreateGalleryImage inserts an image record and returns the refreshed list.
func (s *Store) CreateGalleryImage(ctx context.Context, input GalleryImageInput) ([]models.GalleryImage, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrValidation)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}

	row := models.GalleryImage{
		ID:          uuid.NewString(),
		URL:         strings.TrimSpace(input.URL),
		AltText:     strings.TrimSpace(input.AltText),
		Category:    input.Category,
		OrderIndex:  input.OrderIndex,
		StoragePath: strings.TrimSpace(input.StoragePath),
		CreatedAt:   time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&row).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create gallery image: %w", errCreate)
	}
	return s.ListGalleryImages(ctx)
}

// UpdateGalleryImage replaces an image's fields and returns the refreshed
// list. Fails with ErrNotFound when the id does not exist.
func (s *Store) UpdateGalleryImage(ctx context.Context, id string, input GalleryImageInput) ([]models.GalleryImage, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrValidation)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}

	var row models.GalleryImage
	if errFind := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: gallery image %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: find gallery image: %w", errFind)
	}

	row.URL = strings.TrimSpace(input.URL)
	row.AltText = strings.TrimSpace(input.AltText)
	row.Category = input.Category
	row.OrderIndex = input.OrderIndex

	if errSave := s.db.WithContext(ctx).Save(&row).Error; errSave != nil {
		return nil, fmt.Errorf("store: update gallery image: %w", errSave)
	}
	return s.ListGalleryImages(ctx)
}

// DeleteGalleryImage removes an image record and returns the refreshed list.
func (s *Store) DeleteGalleryImage(ctx context.Context, id string) ([]models.GalleryImage, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryImage{})
	if result.Error != nil {
		return nil, fmt.Errorf("store: delete gallery image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("store: gallery image %s: %w", id, ErrNotFound)
	}
	return s.ListGalleryImages(ctx)
}

// DeleteGalleryImageWithFile removes an image record and, when the record
// carries a storage path, best-effort removes the stored object. A storage
// failure is logged and never blocks the row deletion.
func (s *Store) DeleteGalleryImageWithFile(ctx context.Context, id string) ([]models.GalleryImage, error) {
	var row models.GalleryImage
	if errFind := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: gallery image %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: find gallery image: %w", errFind)
	}

	if row.StoragePath != "" && s.objects != nil {
		if errRemove := s.objects.Remove(ctx, row.StoragePath); errRemove != nil {
			log.WithError(errRemove).
				WithField("path", row.StoragePath).
				Warn("failed to remove gallery object")
		}
	}

	return s.DeleteGalleryImage(ctx, id)
}
