package models

import (
	"time"

	"gorm.io/datatypes"
)

// ServicePackage represents one detailing package shown on the services grid.
type ServicePackage struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Primary key (UUID).

	Name string `gorm:"type:varchar(255);not null"` // Package name.

	// PriceRange is the legacy display string ("$89 - $129") used whenever
	// no per-vehicle price has been configured.
	PriceRange string `gorm:"type:varchar(64);not null;default:''"`

	Popular bool `gorm:"not null;default:false"` // Highlighted on the grid.

	Interior datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"` // Interior feature list.
	Exterior datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"` // Exterior feature list.

	OrderIndex int `gorm:"not null;default:0"` // Display ordering weight.

	UpdatedAt time.Time `gorm:"not null"` // Last update timestamp.
}
