package models

import "time"

// GalleryCategory classifies a gallery image.
type GalleryCategory string

// Gallery image categories.
const (
	GalleryCategoryBefore  GalleryCategory = "before"
	GalleryCategoryAfter   GalleryCategory = "after"
	GalleryCategoryProcess GalleryCategory = "process"
)

// Valid reports whether the category is one of the known values.
func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryCategoryBefore, GalleryCategoryAfter, GalleryCategoryProcess:
		return true
	default:
		return false
	}
}

// GalleryImage represents one image in the before/after gallery.
type GalleryImage struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Primary key (UUID).

	URL      string          `gorm:"type:text;not null"`        // Public image URL.
	AltText  string          `gorm:"type:varchar(255)"`         // Accessibility text.
	Category GalleryCategory `gorm:"type:varchar(16);not null"` // before/after/process.

	OrderIndex int `gorm:"not null;default:0"` // Display ordering weight.

	// StoragePath keys the uploaded object in the file store. Empty for
	// images referenced by external URL only.
	StoragePath string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"` // Creation timestamp.
}
