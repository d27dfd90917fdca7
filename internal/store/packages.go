package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServicePackageInput carries caller-supplied package fields.
type ServicePackageInput struct {
	Name       string   // Package name.
	PriceRange string   // Legacy display price range.
	Popular    bool     // Highlighted on the grid.
	Interior   []string // Interior feature list.
	Exterior   []string // Exterior feature list.
	OrderIndex int      // Display ordering weight.
}

// featureJSON encodes a feature list for storage, treating nil as empty.
func featureJSON(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, errMarshal := json.Marshal(items)
	if errMarshal != nil {
		return nil, fmt.Errorf("store: encode features: %w", errMarshal)
	}
	return datatypes.JSON(raw), nil
}

// ListServicePackages returns all packages ordered for display. Ties on
// order_index break by id to keep the sort deterministic.
func (s *Store) ListServicePackages(ctx context.Context) ([]models.ServicePackage, error) {
	var rows []models.ServicePackage
	errFind := s.db.WithContext(ctx).
		Order("order_index ASC, id ASC").
		Find(&rows).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: list service packages: %w", errFind)
	}
	return rows, nil
}

// CreateServicePackage inserts a package and returns the refreshed list.
func (s *Store) CreateServicePackage(ctx context.Context, input ServicePackageInput) ([]models.ServicePackage, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	interior, errInterior := featureJSON(input.Interior)
	if errInterior != nil {
		return nil, errInterior
	}
	exterior, errExterior := featureJSON(input.Exterior)
	if errExterior != nil {
		return nil, errExterior
	}

	row := models.ServicePackage{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(input.Name),
		PriceRange: strings.TrimSpace(input.PriceRange),
		Popular:    input.Popular,
		Interior:   interior,
		Exterior:   exterior,
		OrderIndex: input.OrderIndex,
		UpdatedAt:  time.Now().UTC(),
	}
	if errCreate := s.db.WithContext(ctx).Create(&row).Error; errCreate != nil {
		return nil, fmt.Errorf("store: create service package: %w", errCreate)
	}
	return s.ListServicePackages(ctx)
}

// UpdateServicePackage replaces a package's fields and returns the refreshed
// list. Fails with ErrNotFound when the id does not exist.
func (s *Store) UpdateServicePackage(ctx context.Context, id string, input ServicePackageInput) ([]models.ServicePackage, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	var row models.ServicePackage
	if errFind := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store: service package %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: find service package: %w", errFind)
	}

	interior, errInterior := featureJSON(input.Interior)
	if errInterior != nil {
		return nil, errInterior
	}
	exterior, errExterior := featureJSON(input.Exterior)
	if errExterior != nil {
		return nil, errExterior
	}

	row.Name = strings.TrimSpace(input.Name)
	row.PriceRange = strings.TrimSpace(input.PriceRange)
	row.Popular = input.Popular
	row.Interior = interior
	row.Exterior = exterior
	row.OrderIndex = input.OrderIndex
	row.UpdatedAt = time.Now().UTC()

	if errSave := s.db.WithContext(ctx).Save(&row).Error; errSave != nil {
		return nil, fmt.Errorf("store: update service package: %w", errSave)
	}
	return s.ListServicePackages(ctx)
}

// DeleteServicePackage removes a package and its pricing rows, then returns
// the refreshed list.
func (s *Store) DeleteServicePackage(ctx context.Context, id string) ([]models.ServicePackage, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ServicePackage{})
	if result.Error != nil {
		return nil, fmt.Errorf("store: delete service package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("store: service package %s: %w", id, ErrNotFound)
	}
	if errPricing := s.db.WithContext(ctx).
		Where("package_id = ?", id).
		Delete(&models.PackagePricing{}).Error; errPricing != nil {
		return nil, fmt.Errorf("store: delete package pricing: %w", errPricing)
	}
	return s.ListServicePackages(ctx)
}
