package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/gorm"
)

// VehicleSizeInput carries caller-supplied vehicle size fields.
type VehicleSizeInput struct {
	Name         string // Size class name.
	DisplayOrder int    // Display ordering weight.
}

// ListVehicleSizes returns all size classes ordered for display.
func (s *Store) ListVehicleSizes(ctx context.Context) ([]models.VehicleSize, error) {
	var rows []models.VehicleSize
	errFind := s.db.WithContext(ctx).
		Order("display_order ASC, id ASC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: list vehicle sizes: %w", errFind)
	}
	return rows, nil
}

// CreateVehicleSize inserts a size class and returns the refreshed list.
func (s *Store) CreateVehicleSize(ctx context.Context, input VehicleSizeInput) ([]models.VehicleSize, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	row := models.VehicleSize{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&row).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create vehicle size: %w", errCreate)
	}
	return s.ListVehicleSizes(ctx)
}

// UpdateVehicleSize replaces a size class's fields and returns the refreshed
// list. Fails with ErrNotFound when the id does not exist.
func (s *Store) UpdateVehicleSize(ctx context.Context, id string, input VehicleSizeInput) ([]models.VehicleSize, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	var row models.VehicleSize
	if errFind := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: vehicle size %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: find vehicle size: %w", errFind)
	}

	row.Name = strings.TrimSpace(input.Name)
	row.DisplayOrder = input.DisplayOrder

	if errSave := s.db.WithContext(ctx).Save(&row).Error; errSave != nil {
		return nil, fmt.Errorf("store: update vehicle size: %w", errSave)
	}
	return s.ListVehicleSizes(ctx)
}

// DeleteVehicleSize removes a size class and its pricing rows, then returns
// the refreshed list.
func (s *Store) DeleteVehicleSize(ctx context.Context, id string) ([]models.VehicleSize, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.VehicleSize{})
	if result.Error != nil {
		return nil, fmt.Errorf("store: delete vehicle size: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("store: vehicle size %s: %w", id, ErrNotFound)
	}
	if errPricing := s.db.WithContext(ctx).
		Where("vehicle_size_id = ?", id).
		Delete(&models.PackagePricing{}).Error; errPricing != nil {
		return nil, fmt.Errorf("store: delete package pricing: %w", errPricing)
	}
	return s.ListVehicleSizes(ctx)
}
