package models

import "time"

// Admin represents an operator account for the admin panel.
type Admin struct {
	ID string `gorm:"type:varchar(64);primaryKey"` // Primary key (UUID).

	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"` // Login email.
	Password string `gorm:"type:text;not null"`                     // Bcrypt hash.

	TOTPSecret string `gorm:"type:text"`             // TOTP secret, empty when MFA is off.
	Active     bool   `gorm:"not null;default:true"` // Whether the admin can sign in.

	CreatedAt time.Time `gorm:"not null"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null"` // Last update timestamp.
}
