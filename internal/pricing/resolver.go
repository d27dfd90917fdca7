// Package pricing resolves the display price for a (package, vehicle size)
// pair. A stored price of zero is treated as "unset" and falls back to the
// package's legacy price-range string.
package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/thedetailproz/site-backend/internal/models"
)

// NotSet is the range summary shown when a package has no configured prices.
const NotSet = "Not set"

// FormatCard formats a price for package-card display, rounded to the
// nearest whole dollar.
func FormatCard(price float64) string {
	return fmt.Sprintf("$%d", int64(math.Round(price)))
}

// FormatEdit formats a price for editing with two-decimal precision.
func FormatEdit(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// Resolve returns the display price for a package and vehicle size. When no
// matching pricing row exists, or its price is zero, the package's legacy
// price-range string is returned. Unknown ids never fail: an unknown vehicle
// size falls back to the legacy range, an unknown package yields "".
func Resolve(packages []models.ServicePackage, rows []models.PackagePricing, packageID, vehicleSizeID string) string {
	var pkg *models.ServicePackage
	for i := range packages {
		if packages[i].ID == packageID {
			pkg = &packages[i]
			break
		}
	}
	if pkg == nil {
		return ""
	}

	for i := range rows {
		if rows[i].PackageID == packageID && rows[i].VehicleSizeID == vehicleSizeID {
			if rows[i].Price > 0 {
				return FormatCard(rows[i].Price)
			}
			break
		}
	}
	return pkg.PriceRange
}

// RangeSummary reports the configured price spread for a package across all
// vehicle sizes: NotSet when nothing is configured, a single value when all
// configured prices agree, and "$min - $max" otherwise.
func RangeSummary(rows []models.PackagePricing, packageID string) string {
	prices := make([]float64, 0, len(rows))
	for i := range rows {
		if rows[i].PackageID == packageID && rows[i].Price > 0 {
			prices = append(prices, rows[i].Price)
		}
	}
	if len(prices) == 0 {
		return NotSet
	}

	sort.Float64s(prices)
	min, max := prices[0], prices[len(prices)-1]
	if min == max {
		return FormatCard(min)
	}
	return FormatCard(min) + " - " + FormatCard(max)
}

// DefaultVehicleSize returns the size class a caller should select when none
// is chosen: the first by display order. The second result is false when the
// collection is empty.
func DefaultVehicleSize(sizes []models.VehicleSize) (models.VehicleSize, bool) {
	if len(sizes) == 0 {
		return models.VehicleSize{}, false
	}
	first := sizes[0]
	for _, size := range sizes[1:] {
		if size.DisplayOrder < first.DisplayOrder ||
			(size.DisplayOrder == first.DisplayOrder && size.ID < first.ID) {
			first = size
		}
	}
	return first, true
}
