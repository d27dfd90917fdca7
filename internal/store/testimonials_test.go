package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/models"
)

func TestCreateTestimonial_Validation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input TestimonialInput
	}{
		{"missing name", TestimonialInput{Text: "Great", Rating: 5, Source: models.TestimonialSourceManual}},
		{"rating out of range", TestimonialInput{Name: "A", Text: "Great", Rating: 6, Source: models.TestimonialSourceManual}},
		{"unknown source", TestimonialInput{Name: "A", Text: "Great", Rating: 5, Source: "yelp"}},
		{"google without review id", TestimonialInput{Name: "A", Text: "Great", Rating: 5, Source: models.TestimonialSourceGoogle}},
		{"manual with review id", TestimonialInput{Name: "A", Text: "Great", Rating: 5, Source: models.TestimonialSourceManual, GoogleReviewID: "123"}},
	}
	for _, tc := range cases {
		if _, err := st.CreateTestimonial(ctx, tc.input); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestListPublishedTestimonials_FiltersDrafts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.CreateTestimonial(ctx, TestimonialInput{
		Name: "Published", Text: "Great work", Rating: 5,
		Source: models.TestimonialSourceManual, IsPublished: true, OrderIndex: 2,
	}); err != nil {
		t.Fatalf("create published: %v", err)
	}
	if _, err := st.CreateTestimonial(ctx, TestimonialInput{
		Name: "Draft", Text: "Pending review", Rating: 4,
		Source: models.TestimonialSourceManual, OrderIndex: 1,
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	rows, err := st.ListPublishedTestimonials(ctx)
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Published" {
		t.Fatalf("expected only the published row, got %v", rows)
	}
}

func TestGoogleReviewIDs_ReturnsOnlyGoogleRows(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.CreateTestimonial(ctx, TestimonialInput{
		Name: "Imported", Text: "From Google", Rating: 5,
		Source: models.TestimonialSourceGoogle, GoogleReviewID: "1700000000",
	}); err != nil {
		t.Fatalf("create google: %v", err)
	}
	if _, err := st.CreateTestimonial(ctx, TestimonialInput{
		Name: "Manual", Text: "From the site", Rating: 5,
		Source: models.TestimonialSourceManual,
	}); err != nil {
		t.Fatalf("create manual: %v", err)
	}

	ids, err := st.GoogleReviewIDs(ctx)
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 id, got %d", len(ids))
	}
	if _, ok := ids["1700000000"]; !ok {
		t.Fatalf("expected id 1700000000 in set, got %v", ids)
	}
}

func TestInsertTestimonials_BulkInsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	staged := []models.Testimonial{
		{ID: uuid.NewString(), Name: "A", Text: "x", Rating: 5, Source: models.TestimonialSourceGoogle, GoogleReviewID: "1"},
		{ID: uuid.NewString(), Name: "B", Text: "y", Rating: 4, Source: models.TestimonialSourceGoogle, GoogleReviewID: "2"},
	}
	if err := st.InsertTestimonials(ctx, staged); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := st.ListTestimonials(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestUpdateTestimonial_MissingID(t *testing.T) {
	st := newTestStore(t)

	_, err := st.UpdateTestimonial(context.Background(), "missing", TestimonialInput{
		Name: "A", Text: "x", Rating: 5, Source: models.TestimonialSourceManual,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
