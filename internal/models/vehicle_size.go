package models

import "time"

// VehicleSize represents a vehicle size class used for per-size pricing.
type VehicleSize struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Primary key (UUID).

	Name         string `gorm:"type:varchar(255);not null"` // Size class name.
	DisplayOrder int    `gorm:"not null;default:0"`         // Display ordering weight.

	CreatedAt time.Time `gorm:"not null"` // Creation timestamp.
}
