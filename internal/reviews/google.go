// Package reviews imports Google reviews and stages them as unpublished
// testimonials for manual approval.
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thedetailproz/site-backend/internal/config"
)

// ErrNotConfigured indicates the Places API key or place id is absent. The
// check runs before any network access.
var ErrNotConfigured = errors.New("reviews: google places api key or place id not configured")

// ErrImport indicates the external review fetch failed or returned a
// non-success status.
var ErrImport = errors.New("reviews: import failed")

// Review is one review entry from the Places details response.
type Review struct {
	AuthorName              string `json:"author_name"`               // Reviewer display name.
	ProfilePhotoURL         string `json:"profile_photo_url"`         // Avatar URL, may be empty.
	Rating                  int    `json:"rating"`                    // Star rating, 1-5.
	RelativeTimeDescription string `json:"relative_time_description"` // Label like "2 months ago".
	Text                    string `json:"text"`                      // Review body.
	Time                    int64  `json:"time"`                      // Unix timestamp, used as the external id.
}

// ExternalID returns the dedup key for the review.
func (r Review) ExternalID() string {
	return fmt.Sprintf("%d", r.Time)
}

// defaultPlacesBaseURL is the Google Places details endpoint.
const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place/details/json"

// PlacesClient fetches reviews from the Google Places details API.
type PlacesClient struct {
	apiKey  string       // API key.
	placeID string       // Place identifier.
	baseURL string       // Endpoint URL, overridable in tests.
	client  *http.Client // HTTP client with request timeout.
}

// NewPlacesClient constructs a Places client. Fails with ErrNotConfigured
// when either credential is absent.
func NewPlacesClient(cfg config.GooglePlacesConfig) (*PlacesClient, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	return &PlacesClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		placeID: strings.TrimSpace(cfg.PlaceID),
		baseURL: defaultPlacesBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// placesResponse maps the details payload fields the importer needs.
type placesResponse struct {
	Status string `json:"status"` // API status, "OK" on success.
	Result struct {
		Reviews []Review `json:"reviews"` // Bounded review set.
	} `json:"result"`
}

// FetchReviews performs the single bounded details call and returns the full
// review set the API reports.
func (c *PlacesClient) FetchReviews(ctx context.Context) ([]Review, error) {
	query := url.Values{}
	query.Set("place_id", c.placeID)
	query.Set("fields", "name,rating,reviews,user_ratings_total")
	query.Set("key", c.apiKey)

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if errReq != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrImport, errReq)
	}

	resp, errDo := c.client.Do(req)
	if errDo != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, errDo)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http status %d", ErrImport, resp.StatusCode)
	}

	var payload placesResponse
	if errDecode := json.NewDecoder(resp.Body).Decode(&payload); errDecode != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrImport, errDecode)
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("%w: places api status %s", ErrImport, payload.Status)
	}
	return payload.Result.Reviews, nil
}
