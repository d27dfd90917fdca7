package db

import (
	"errors"
	"fmt"

	"github.com/thedetailproz/site-backend/internal/content"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm"
)

// Migrate runs schema migrations and seeds the built-in content rows.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}

	if errAutoMigrate := conn.AutoMigrate(
		&models.Admin{},
		&models.BusinessSettings{},
		&models.ServicePackage{},
		&models.VehicleSize{},
		&models.PackagePricing{},
		&models.GalleryImage{},
		&models.Testimonial{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errAutoMigrate)
	}

	if errSeed := ensureBusinessSettings(conn); errSeed != nil {
		return errSeed
	}
	if errSeed := ensureServicePackages(conn); errSeed != nil {
		return errSeed
	}
	if errSeed := ensureVehicleSizes(conn); errSeed != nil {
		return errSeed
	}

	// ddl defines an index statement to apply.
	type ddl struct {
		name string // Human-readable name for error reporting.
		sql  string // SQL to execute.
	}
	ddls := []ddl{
		{
			name: "idx_service_packages_order_index_id",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_service_packages_order_index_id
				ON service_packages (order_index ASC, id ASC)
			`,
		},
		{
			name: "idx_vehicle_sizes_display_order_id",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_vehicle_sizes_display_order_id
				ON vehicle_sizes (display_order ASC, id ASC)
			`,
		},
		{
			name: "idx_gallery_images_order_index_id",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_gallery_images_order_index_id
				ON gallery_images (order_index ASC, id ASC)
			`,
		},
		{
			name: "idx_testimonials_published_order_index",
			sql: `
				CREATE INDEX IF NOT EXISTS idx_testimonials_published_order_index
				ON testimonials (is_published, order_index ASC, id ASC)
			`,
		},
		{
			name: "idx_testimonials_google_review_id",
			sql: `
				CREATE UNIQUE INDEX IF NOT EXISTS idx_testimonials_google_review_id
				ON testimonials (google_review_id)
				WHERE source = 'google'
			`,
		},
	}
	for _, item := range ddls {
		if errDDL := conn.Exec(item.sql).Error; errDDL != nil {
			return fmt.Errorf("db: create index %s: %w", item.name, errDDL)
		}
	}

	return nil
}

// ensureBusinessSettings seeds the singleton settings row when absent.
func ensureBusinessSettings(conn *gorm.DB) error {
	var existing models.BusinessSettings
	errFind := conn.Where("id = ?", models.DefaultBusinessSettingsID).First(&existing).Error
	if errFind == nil {
		return nil
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return fmt.Errorf("db: query business settings: %w", errFind)
	}

	row := content.DefaultBusinessSettings()
	if errCreate := conn.Create(&row).Error; errCreate != nil {
		return fmt.Errorf("db: seed business settings: %w", errCreate)
	}
	return nil
}

// ensureServicePackages seeds the default packages when the table is empty.
func ensureServicePackages(conn *gorm.DB) error {
	var count int64
	if errCount := conn.Model(&models.ServicePackage{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count service packages: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	rows := content.DefaultServicePackages()
	if errCreate := conn.Create(&rows).Error; errCreate != nil {
		return fmt.Errorf("db: seed service packages: %w", errCreate)
	}
	return nil
}

// ensureVehicleSizes seeds the default size classes when the table is empty.
func ensureVehicleSizes(conn *gorm.DB) error {
	var count int64
	if errCount := conn.Model(&models.VehicleSize{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count vehicle sizes: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	rows := content.DefaultVehicleSizes()
	if errCreate := conn.Create(&rows).Error; errCreate != nil {
		return fmt.Errorf("db: seed vehicle sizes: %w", errCreate)
	}
	return nil
}
