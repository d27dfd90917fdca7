package models

import "time"

// PackagePricing maps a (package, vehicle size) pair to a price. At most one
// row exists per pair, enforced by a unique index and upsert writes.
type PackagePricing struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Primary key (UUID).

	PackageID     string `gorm:"type:varchar(64);not null;uniqueIndex:idx_package_pricing_pair"` // Service package id.
	VehicleSizeID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_package_pricing_pair"` // Vehicle size id.

	// Price of zero means "unset"; the resolver falls back to the package's
	// legacy price range string.
	Price float64 `gorm:"type:decimal(10,2);not null;default:0"`

	CreatedAt time.Time `gorm:"not null"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null"` // Last update timestamp.
}
