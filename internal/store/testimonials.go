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
)

// TestimonialInput carries caller-supplied testimonial fields.
type TestimonialInput struct {
	Name           string                   // Customer name.
	Location       string                   // Customer location label.
	Rating         int                      // Star rating, 1-5.
	Text           string                   // Review body.
	Avatar         string                   // Avatar image URL.
	Source         models.TestimonialSource // google or manual.
	GoogleReviewID string                   // External review id, google rows only.
	IsPublished    bool                     // Visible on the public site.
	DisplayDate    string                   // Relative date label.
	OrderIndex     int                      // Display ordering weight.
}

// validate checks basic shape constraints before a write.
func (in TestimonialInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(in.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrValidation)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if !in.Source.Valid() {
		return fmt.Errorf("%w: unknown source %q", ErrValidation, in.Source)
	}
	if in.Source == models.TestimonialSourceGoogle && strings.TrimSpace(in.GoogleReviewID) == "" {
		return fmt.Errorf("%w: google review id is required for google source", ErrValidation)
	}
	if in.Source == models.TestimonialSourceManual && strings.TrimSpace(in.GoogleReviewID) != "" {
		return fmt.Errorf("%w: google review id is only valid for google source", ErrValidation)
	}
	return nil
}

// ListTestimonials returns all testimonials ordered for display.
func (s *Store) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var rows []models.Testimonial
	errFind := s.db.WithContext(ctx).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: list testimonials: %w", errFind)
	}
	return rows, nil
}

// ListPublishedTestimonials returns only published testimonials, ordered for
// display on the public site.
func (s *Store) ListPublishedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var rows []models.Testimonial
	errFind := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: list published testimonials: %w", errFind)
	}
	return rows, nil
}

// CreateTestimonial inserts a testimonial and returns the refreshed list.
func (s *Store) CreateTestimonial(ctx context.Context, input TestimonialInput) ([]models.Testimonial, error) {
	if errValidate := input.validate(); errValidate != nil {
		return nil, errValidate
	}

	now := time.Now().UTC()
	row := models.Testimonial{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(input.Name),
		Location:       strings.TrimSpace(input.Location),
		Rating:         input.Rating,
		Text:           strings.TrimSpace(input.Text),
		Avatar:         strings.TrimSpace(input.Avatar),
		Source:         input.Source,
		GoogleReviewID: strings.TrimSpace(input.GoogleReviewID),
		IsPublished:    input.IsPublished,
		DisplayDate:    strings.TrimSpace(input.DisplayDate),
		OrderIndex:     input.OrderIndex,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if errCreate := s.db.WithContext(ctx).Create(&row).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create testimonial: %w", errCreate)
	}
	return s.ListTestimonials(ctx)
}

// UpdateTestimonial replaces a testimonial's fields and returns the
// refreshed list. Fails with ErrNotFound when the id does not exist.
func (s *Store) UpdateTestimonial(ctx context.Context, id string, input TestimonialInput) ([]models.Testimonial, error) {
	if errValidate := input.validate(); errValidate != nil {
		return nil, errValidate
	}

	var row models.Testimonial
	if errFind := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: testimonial %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: find testimonial: %w", errFind)
	}

	row.Name = strings.TrimSpace(input.Name)
	row.Location = strings.TrimSpace(input.Location)
	row.Rating = input.Rating
	row.Text = strings.TrimSpace(input.Text)
	row.Avatar = strings.TrimSpace(input.Avatar)
	row.Source = input.Source
	row.GoogleReviewID = strings.TrimSpace(input.GoogleReviewID)
	row.IsPublished = input.IsPublished
	row.DisplayDate = strings.TrimSpace(input.DisplayDate)
	row.OrderIndex = input.OrderIndex
	row.UpdatedAt = time.Now().UTC()

	if errSave := s.db.WithContext(ctx).Save(&row).Error; errSave != nil {
		return nil, fmt.Errorf("store: update testimonial: %w", errSave)
	}
	return s.ListTestimonials(ctx)
}

// DeleteTestimonial removes a testimonial and returns the refreshed list.
func (s *Store) DeleteTestimonial(ctx context.Context, id string) ([]models.Testimonial, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Testimonial{})
	if result.Error != nil {
		return nil, fmt.Errorf("store: delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("store: testimonial %s: %w", id, ErrNotFound)
	}
	return s.ListTestimonials(ctx)
}

// GoogleReviewIDs returns the set of external review ids already staged or
// published from Google imports.
func (s *Store) GoogleReviewIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	errFind := s.db.WithContext(ctx).
		Model(&models.Testimonial{}).
		Where("source = ?", models.TestimonialSourceGoogle).
		Pluck("google_review_id", &ids).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: google review ids: %w", errFind)
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set, nil
}

// InsertTestimonials bulk-inserts staged testimonials in a single write.
func (s *Store) InsertTestimonials(ctx context.Context, rows []models.Testimonial) error {
	if len(rows) == 0 {
		return nil
	}
	if errCreate := s.db.WithContext(ctx).Create(&rows).Error; errCreate != nil {
		return fmt.Errorf("store: insert testimonials: %w", errCreate)
	}
	return nil
}
