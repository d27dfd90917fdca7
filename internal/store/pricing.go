package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm/clause"
)

// ListPackagePricing returns all pricing rows.
func (s *Store) ListPackagePricing(ctx context.Context) ([]models.PackagePricing, error) {
	var rows []models.PackagePricing
	errFind := s.db.WithContext(ctx).
		Order("package_id ASC, vehicle_size_id ASC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: list package pricing: %w", errFind)
	}
	return rows, nil
}

// UpsertPackagePricing writes the price for a (package, vehicle size) pair,
// relying on the store's native upsert to keep the pair unique, and returns
// the refreshed list.
func (s *Store) UpsertPackagePricing(ctx context.Context, packageID, vehicleSizeID string, price float64) ([]models.PackagePricing, error) {
	if strings.TrimSpace(packageID) == "" || strings.TrimSpace(vehicleSizeID) == "" {
		return nil, fmt.Errorf("%w: package and vehicle size are required", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}

	now := time.Now().UTC()
	row := models.PackagePricing{
		ID:            uuid.NewString(),
		PackageID:     strings.TrimSpace(packageID),
		VehicleSizeID: strings.TrimSpace(vehicleSizeID),
		Price:         price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	errUpsert := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "package_id"}, {Name: "vehicle_size_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(&row).Error
	if errUpsert != nil {
		return nil, fmt.Errorf("store: upsert package pricing: %w", errUpsert)
	}
	return s.ListPackagePricing(ctx)
}
