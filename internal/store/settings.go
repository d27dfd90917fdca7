package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm/clause"
)

// BusinessSettingsInput carries caller-supplied settings fields; server
// fields (id, timestamps) are assigned by the layer.
type BusinessSettingsInput struct {
	PhoneNumber    string // Digits only.
	PhoneFormatted string // Display string.
	PhoneLink      string // Dial URI.
	Email          string // Contact email.
}

// GetBusinessSettings returns the singleton settings row.
func (s *Store) GetBusinessSettings(ctx context.Context) (models.BusinessSettings, error) {
	var row models.BusinessSettings
	errFind := s.db.WithContext(ctx).
		Where("id = ?", models.DefaultBusinessSettingsID).
		First(&row).Error
	if errFind != nil {
		return models.BusinessSettings{}, fmt.Errorf("store: business settings: %w", errFind)
	}
	return row, nil
}

// UpsertBusinessSettings writes the singleton settings row and returns the
// stored result.
func (s *Store) UpsertBusinessSettings(ctx context.Context, input BusinessSettingsInput) (models.BusinessSettings, error) {
	if strings.TrimSpace(input.PhoneNumber) == "" {
		return models.BusinessSettings{}, fmt.Errorf("%w: phone number is required", ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return models.BusinessSettings{}, fmt.Errorf("%w: email is required", ErrValidation)
	}

	row := models.BusinessSettings{
		ID:             models.DefaultBusinessSettingsID,
		PhoneNumber:    strings.TrimSpace(input.PhoneNumber),
		PhoneFormatted: strings.TrimSpace(input.PhoneFormatted),
		PhoneLink:      strings.TrimSpace(input.PhoneLink),
		Email:          strings.TrimSpace(input.Email),
		UpdatedAt:      time.Now().UTC(),
	}

	errUpsert := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone_number", "phone_formatted", "phone_link", "email", "updated_at"}),
	}).Create(&row).Error
	if errUpsert != nil {
		return models.BusinessSettings{}, fmt.Errorf("store: upsert business settings: %w", errUpsert)
	}
	return row, nil
}
