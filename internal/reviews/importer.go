package reviews

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/content"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/store"
)

// Import policy constants.
const (
	// minImportRating is the quality threshold; reviews below it are never
	// staged.
	minImportRating = 4
	// importBatchCap bounds one import run. When more reviews qualify, the
	// first ones in API order win.
	importBatchCap = 10
	// maxReviewTextLen bounds staged review text before the ellipsis.
	maxReviewTextLen = 300
	// stagedOrderIndex places staged imports at the end of the list.
	stagedOrderIndex = 999
	// importedLocation is the fixed location label for imported reviews.
	importedLocation = "Google Review"
)

// Fetcher fetches the external review set.
type Fetcher interface {
	FetchReviews(ctx context.Context) ([]Review, error)
}

// Result reports an import run: Total is the review count the API returned
// before any filtering, Imported is the count actually inserted.
type Result struct {
	Imported int `json:"imported"` // Testimonials staged this run.
	Total    int `json:"total"`    // Reviews returned by the API.
}

// Importer pulls external reviews, filters, dedups, and stages them as
// unpublished testimonials.
type Importer struct {
	store   *store.Store // Testimonial persistence.
	fetcher Fetcher      // External review source.
}

// NewImporter constructs an Importer.
func NewImporter(st *store.Store, fetcher Fetcher) *Importer {
	return &Importer{store: st, fetcher: fetcher}
}

// Run executes one import pass. Zero imports is a valid, non-error outcome.
// A fetch failure propagates before any insert is attempted; the insert
// itself is a single bulk write, so no partial commit can occur.
func (im *Importer) Run(ctx context.Context) (Result, error) {
	if im == nil || im.fetcher == nil {
		return Result{}, ErrNotConfigured
	}

	fetched, errFetch := im.fetcher.FetchReviews(ctx)
	if errFetch != nil {
		return Result{}, errFetch
	}
	total := len(fetched)

	qualified := make([]Review, 0, len(fetched))
	for _, review := range fetched {
		if review.Rating >= minImportRating {
			qualified = append(qualified, review)
		}
	}

	existing, errExisting := im.store.GoogleReviewIDs(ctx)
	if errExisting != nil {
		return Result{}, errExisting
	}

	fresh := make([]Review, 0, len(qualified))
	for _, review := range qualified {
		if _, seen := existing[review.ExternalID()]; seen {
			continue
		}
		fresh = append(fresh, review)
	}
	if len(fresh) > importBatchCap {
		fresh = fresh[:importBatchCap]
	}

	if len(fresh) == 0 {
		return Result{Imported: 0, Total: total}, nil
	}

	now := time.Now().UTC()
	staged := make([]models.Testimonial, 0, len(fresh))
	for _, review := range fresh {
		avatar := review.ProfilePhotoURL
		if avatar == "" {
			avatar = content.DefaultAvatar
		}
		staged = append(staged, models.Testimonial{
			ID:             uuid.NewString(),
			Name:           review.AuthorName,
			Location:       importedLocation,
			Rating:         review.Rating,
			Text:           TruncateText(review.Text, maxReviewTextLen),
			Avatar:         avatar,
			Source:         models.TestimonialSourceGoogle,
			GoogleReviewID: review.ExternalID(),
			IsPublished:    false,
			DisplayDate:    review.RelativeTimeDescription,
			OrderIndex:     stagedOrderIndex,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if errInsert := im.store.InsertTestimonials(ctx, staged); errInsert != nil {
		return Result{}, errInsert
	}
	return Result{Imported: len(staged), Total: total}, nil
}

// TruncateText shortens text to at most maxLen characters plus an ellipsis,
// breaking at the last space within the limit so no word is split. The limit
// counts runes, not bytes, so multibyte reviews keep their full allowance.
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	truncated := string(runes[:maxLen])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
