package models

import "time"

// DefaultBusinessSettingsID is the fixed id of the singleton settings row.
const DefaultBusinessSettingsID = "default"

// BusinessSettings holds the site-wide contact details shown on every page.
// Exactly one logical row exists, keyed by DefaultBusinessSettingsID.
type BusinessSettings struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Fixed row id.

	PhoneNumber    string `gorm:"type:varchar(32);not null"`  // Digits only.
	PhoneFormatted string `gorm:"type:varchar(64);not null"`  // Display string.
	PhoneLink      string `gorm:"type:varchar(64);not null"`  // Dial URI.
	Email          string `gorm:"type:varchar(255);not null"` // Contact email.

	UpdatedAt time.Time `gorm:"not null"` // Last update timestamp.
}
