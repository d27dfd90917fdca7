package reviews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thedetailproz/site-backend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *PlacesClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewPlacesClient(config.GooglePlacesConfig{APIKey: "test-key", PlaceID: "test-place"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.baseURL = server.URL
	return client
}

func TestNewPlacesClient_RequiresCredentials(t *testing.T) {
	_, err := NewPlacesClient(config.GooglePlacesConfig{APIKey: "key-only"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFetchReviews_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("place_id"); got != "test-place" {
			t.Errorf("expected place_id query, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {"reviews": [
				{"author_name": "Sarah", "rating": 5, "text": "Amazing", "time": 1700000001},
				{"author_name": "Mike", "rating": 4, "text": "Solid", "time": 1700000002}
			]}
		}`))
	})

	reviews, err := client.FetchReviews(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].ExternalID() != "1700000001" {
		t.Fatalf("expected timestamp external id, got %q", reviews[0].ExternalID())
	}
}

func TestFetchReviews_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchReviews(context.Background())
	if !errors.Is(err, ErrImport) {
		t.Fatalf("expected ErrImport, got %v", err)
	}
}

func TestFetchReviews_APIStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "result": {}}`))
	})

	_, err := client.FetchReviews(context.Background())
	if !errors.Is(err, ErrImport) {
		t.Fatalf("expected ErrImport, got %v", err)
	}
}

func TestFetchReviews_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.FetchReviews(context.Background())
	if !errors.Is(err, ErrImport) {
		t.Fatalf("expected ErrImport, got %v", err)
	}
}
