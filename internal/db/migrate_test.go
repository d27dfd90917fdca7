package db

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return conn
}

func TestMigrate_SeedsDefaultContent(t *testing.T) {
	conn := openTestDB(t)
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	var settings models.BusinessSettings
	if errFind := conn.Where("id = ?", models.DefaultBusinessSettingsID).First(&settings).Error; errFind != nil {
		t.Fatalf("expected seeded settings row: %v", errFind)
	}

	var packageCount int64
	if errCount := conn.Model(&models.ServicePackage{}).Count(&packageCount).Error; errCount != nil {
		t.Fatalf("count packages: %v", errCount)
	}
	if packageCount != 3 {
		t.Fatalf("expected 3 seeded packages, got %d", packageCount)
	}

	var sizeCount int64
	if errCount := conn.Model(&models.VehicleSize{}).Count(&sizeCount).Error; errCount != nil {
		t.Fatalf("count sizes: %v", errCount)
	}
	if sizeCount != 3 {
		t.Fatalf("expected 3 seeded vehicle sizes, got %d", sizeCount)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	conn := openTestDB(t)
	if err := Migrate(conn); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var packageCount int64
	if errCount := conn.Model(&models.ServicePackage{}).Count(&packageCount).Error; errCount != nil {
		t.Fatalf("count packages: %v", errCount)
	}
	if packageCount != 3 {
		t.Fatalf("expected seeds to run once, got %d packages", packageCount)
	}
}

func TestMigrate_GoogleReviewIDUniqueForGoogleSource(t *testing.T) {
	conn := openTestDB(t)
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	first := models.Testimonial{
		ID: "t1", Name: "A", Text: "x", Rating: 5,
		Source: models.TestimonialSourceGoogle, GoogleReviewID: "1700000000",
	}
	if errCreate := conn.Create(&first).Error; errCreate != nil {
		t.Fatalf("create first: %v", errCreate)
	}

	duplicate := models.Testimonial{
		ID: "t2", Name: "B", Text: "y", Rating: 4,
		Source: models.TestimonialSourceGoogle, GoogleReviewID: "1700000000",
	}
	if errCreate := conn.Create(&duplicate).Error; errCreate == nil {
		t.Fatal("expected duplicate google review id to be rejected")
	}

	// Manual rows share an empty external id without conflict.
	manualA := models.Testimonial{ID: "t3", Name: "C", Text: "z", Rating: 5, Source: models.TestimonialSourceManual}
	manualB := models.Testimonial{ID: "t4", Name: "D", Text: "w", Rating: 5, Source: models.TestimonialSourceManual}
	if errCreate := conn.Create(&manualA).Error; errCreate != nil {
		t.Fatalf("create manual a: %v", errCreate)
	}
	if errCreate := conn.Create(&manualB).Error; errCreate != nil {
		t.Fatalf("create manual b: %v", errCreate)
	}
}
