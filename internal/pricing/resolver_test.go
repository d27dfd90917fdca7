package pricing

import (
	"testing"

	"github.com/thedetailproz/site-backend/internal/models"
)

func TestResolve(t *testing.T) {
	packages := []models.ServicePackage{
		{ID: "essential-detail", PriceRange: "$89 - $129"},
		{ID: "premium-detail", PriceRange: "$149 - $199"},
	}
	rows := []models.PackagePricing{
		{PackageID: "essential-detail", VehicleSizeID: "coupe-sedan", Price: 89.49},
		{PackageID: "essential-detail", VehicleSizeID: "mid-size-suv", Price: 0},
	}

	cases := []struct {
		name          string
		packageID     string
		vehicleSizeID string
		want          string
	}{
		{"configured price rounds to whole dollars", "essential-detail", "coupe-sedan", "$89"},
		{"zero price falls back to legacy range", "essential-detail", "mid-size-suv", "$89 - $129"},
		{"missing row falls back to legacy range", "essential-detail", "full-size-suv", "$89 - $129"},
		{"package without any rows falls back", "premium-detail", "coupe-sedan", "$149 - $199"},
		{"unknown package yields empty", "ghost", "coupe-sedan", ""},
	}
	for _, tc := range cases {
		if got := Resolve(packages, rows, tc.packageID, tc.vehicleSizeID); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestRangeSummary(t *testing.T) {
	rows := []models.PackagePricing{
		{PackageID: "premium-detail", VehicleSizeID: "coupe-sedan", Price: 120},
		{PackageID: "premium-detail", VehicleSizeID: "mid-size-suv", Price: 120},
		{PackageID: "premium-detail", VehicleSizeID: "full-size-suv", Price: 150},
		{PackageID: "essential-detail", VehicleSizeID: "coupe-sedan", Price: 90},
		{PackageID: "luxury-detail", VehicleSizeID: "coupe-sedan", Price: 0},
	}

	if got := RangeSummary(rows, "premium-detail"); got != "$120 - $150" {
		t.Fatalf("expected spread summary, got %q", got)
	}
	if got := RangeSummary(rows, "essential-detail"); got != "$90" {
		t.Fatalf("expected single-value summary, got %q", got)
	}
	if got := RangeSummary(rows, "luxury-detail"); got != NotSet {
		t.Fatalf("expected %q for zero-only prices, got %q", NotSet, got)
	}
	if got := RangeSummary(rows, "ghost"); got != NotSet {
		t.Fatalf("expected %q for unknown package, got %q", NotSet, got)
	}
}

func TestFormatCardRounds(t *testing.T) {
	if got := FormatCard(129.5); got != "$130" {
		t.Fatalf("expected $130, got %q", got)
	}
	if got := FormatCard(129.49); got != "$129" {
		t.Fatalf("expected $129, got %q", got)
	}
}

func TestDefaultVehicleSize(t *testing.T) {
	sizes := []models.VehicleSize{
		{ID: "mid-size-suv", DisplayOrder: 2},
		{ID: "coupe-sedan", DisplayOrder: 1},
		{ID: "another-first", DisplayOrder: 1},
	}

	first, ok := DefaultVehicleSize(sizes)
	if !ok {
		t.Fatal("expected a default size")
	}
	if first.ID != "another-first" {
		t.Fatalf("expected display-order ties to break by id, got %q", first.ID)
	}

	if _, ok := DefaultVehicleSize(nil); ok {
		t.Fatal("expected no default for empty collection")
	}
}
