package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a per-test in-memory database with the content schema.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	errMigrate := conn.AutoMigrate(
		&models.BusinessSettings{},
		&models.ServicePackage{},
		&models.VehicleSize{},
		&models.PackagePricing{},
		&models.GalleryImage{},
		&models.Testimonial{},
		&models.Admin{},
	)
	if errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return New(conn, nil)
}

func TestUpsertBusinessSettings_SingletonRow(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first, err := st.UpsertBusinessSettings(ctx, BusinessSettingsInput{
		PhoneNumber:    "9035551234",
		PhoneFormatted: "(903) 555-1234",
		PhoneLink:      "tel:+19035551234",
		Email:          "first@example.com",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if first.ID != models.DefaultBusinessSettingsID {
		t.Fatalf("expected singleton id, got %q", first.ID)
	}

	second, err := st.UpsertBusinessSettings(ctx, BusinessSettingsInput{
		PhoneNumber:    "9035555678",
		PhoneFormatted: "(903) 555-5678",
		PhoneLink:      "tel:+19035555678",
		Email:          "second@example.com",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.Email != "second@example.com" {
		t.Fatalf("expected updated email, got %q", second.Email)
	}

	var count int64
	if errCount := st.DB().Model(&models.BusinessSettings{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count: %v", errCount)
	}
	if count != 1 {
		t.Fatalf("expected a single settings row, got %d", count)
	}
}

func TestServicePackages_CreateReturnsOrderedList(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.CreateServicePackage(ctx, ServicePackageInput{Name: "Luxury", PriceRange: "$249 - $349", OrderIndex: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}
	rows, err := st.CreateServicePackage(ctx, ServicePackageInput{Name: "Essential", PriceRange: "$89 - $129", OrderIndex: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(rows))
	}
	if rows[0].Name != "Essential" || rows[1].Name != "Luxury" {
		t.Fatalf("expected order_index ordering, got %q then %q", rows[0].Name, rows[1].Name)
	}
}

func TestServicePackages_UpdateMissingID(t *testing.T) {
	st := newTestStore(t)

	_, err := st.UpdateServicePackage(context.Background(), "missing", ServicePackageInput{Name: "X", PriceRange: "$1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServicePackages_DeleteCascadesPricing(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rows, err := st.CreateServicePackage(ctx, ServicePackageInput{Name: "Premium", PriceRange: "$149 - $199"})
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	pkgID := rows[0].ID

	sizes, err := st.CreateVehicleSize(ctx, VehicleSizeInput{Name: "Coupe / Sedan", DisplayOrder: 1})
	if err != nil {
		t.Fatalf("create size: %v", err)
	}
	if _, err := st.UpsertPackagePricing(ctx, pkgID, sizes[0].ID, 120); err != nil {
		t.Fatalf("upsert pricing: %v", err)
	}

	if _, err := st.DeleteServicePackage(ctx, pkgID); err != nil {
		t.Fatalf("delete package: %v", err)
	}

	pricingRows, err := st.ListPackagePricing(ctx)
	if err != nil {
		t.Fatalf("list pricing: %v", err)
	}
	if len(pricingRows) != 0 {
		t.Fatalf("expected pricing rows removed with package, got %d", len(pricingRows))
	}
}

func TestVehicleSizes_DeleteMissingID(t *testing.T) {
	st := newTestStore(t)

	_, err := st.DeleteVehicleSize(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertPackagePricing_PairStaysUnique(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	packages, err := st.CreateServicePackage(ctx, ServicePackageInput{Name: "Essential", PriceRange: "$89 - $129"})
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	sizes, err := st.CreateVehicleSize(ctx, VehicleSizeInput{Name: "Mid-Size SUV", DisplayOrder: 2})
	if err != nil {
		t.Fatalf("create size: %v", err)
	}

	if _, err := st.UpsertPackagePricing(ctx, packages[0].ID, sizes[0].ID, 90); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	rows, err := st.UpsertPackagePricing(ctx, packages[0].ID, sizes[0].ID, 110)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected one pricing row for the pair, got %d", len(rows))
	}
	if rows[0].Price != 110 {
		t.Fatalf("expected updated price 110, got %v", rows[0].Price)
	}
}

func TestUpsertPackagePricing_RejectsNegativePrice(t *testing.T) {
	st := newTestStore(t)

	_, err := st.UpsertPackagePricing(context.Background(), "pkg", "size", -1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
