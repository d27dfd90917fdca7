package models

import "time"

// TestimonialSource identifies where a testimonial came from.
type TestimonialSource string

// Testimonial sources.
const (
	TestimonialSourceGoogle TestimonialSource = "google"
	TestimonialSourceManual TestimonialSource = "manual"
)

// Valid reports whether the source is one of the known values.
func (s TestimonialSource) Valid() bool {
	switch s {
	case TestimonialSourceGoogle, TestimonialSourceManual:
		return true
	default:
		return false
	}
}

// Testimonial represents a customer review, either entered by the operator
// or staged by the Google review importer.
type Testimonial struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Primary key (UUID).

	Name     string `gorm:"type:varchar(255);not null"` // Customer name.
	Location string `gorm:"type:varchar(255)"`          // Customer location label.
	Rating   int    `gorm:"not null"`                   // Star rating, 1-5.
	Text     string `gorm:"type:text;not null"`         // Review body.
	Avatar   string `gorm:"type:text"`                  // Avatar image URL.

	Source TestimonialSource `gorm:"type:varchar(16);not null;default:'manual'"` // google or manual.

	// GoogleReviewID is set only for source=google rows and is unique among
	// them; the importer dedups on it.
	GoogleReviewID string `gorm:"type:varchar(64)"`

	IsPublished bool   `gorm:"not null;default:false"` // Visible on the public site.
	DisplayDate string `gorm:"type:varchar(64)"`       // Relative date label ("2 months ago").

	OrderIndex int `gorm:"not null;default:0"` // Display ordering weight.

	CreatedAt time.Time `gorm:"not null"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null"` // Last update timestamp.
}
