// Package view renders content models as JSON payloads shared by the admin
// and public APIs. Keys mirror the content-store column names the site
// frontend binds to.
package view

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/pricing"
)

// timestamp formats a time for JSON payloads.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// featureList decodes a stored JSON feature column into a string slice.
func featureList(raw []byte) []string {
	var items []string
	if errUnmarshal := json.Unmarshal(raw, &items); errUnmarshal != nil || items == nil {
		return []string{}
	}
	return items
}

// BusinessSettings renders the settings row.
func BusinessSettings(row models.BusinessSettings) gin.H {
	return gin.H{
		"id":              row.ID,
		"phone_number":    row.PhoneNumber,
		"phone_formatted": row.PhoneFormatted,
		"phone_link":      row.PhoneLink,
		"email":           row.Email,
		"updated_at":      timestamp(row.UpdatedAt),
	}
}

// ServicePackage renders one package row.
func ServicePackage(row models.ServicePackage) gin.H {
	return gin.H{
		"id":          row.ID,
		"name":        row.Name,
		"price":       row.PriceRange,
		"popular":     row.Popular,
		"interior":    featureList(row.Interior),
		"exterior":    featureList(row.Exterior),
		"order_index": row.OrderIndex,
		"updated_at":  timestamp(row.UpdatedAt),
	}
}

// ServicePackages renders a package collection in order.
func ServicePackages(rows []models.ServicePackage) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for i := range rows {
		out = append(out, ServicePackage(rows[i]))
	}
	return out
}

// VehicleSize renders one size class row.
func VehicleSize(row models.VehicleSize) gin.H {
	return gin.H{
		"id":            row.ID,
		"name":          row.Name,
		"display_order": row.DisplayOrder,
		"created_at":    timestamp(row.CreatedAt),
	}
}

// VehicleSizes renders a size class collection in order.
func VehicleSizes(rows []models.VehicleSize) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for i := range rows {
		out = append(out, VehicleSize(rows[i]))
	}
	return out
}

// PackagePricing renders one pricing row with both display formats.
func PackagePricing(row models.PackagePricing) gin.H {
	return gin.H{
		"id":              row.ID,
		"package_id":      row.PackageID,
		"vehicle_size_id": row.VehicleSizeID,
		"price":           row.Price,
		"price_edit":      pricing.FormatEdit(row.Price),
		"created_at":      timestamp(row.CreatedAt),
		"updated_at":      timestamp(row.UpdatedAt),
	}
}

// PackagePricings renders a pricing collection.
func PackagePricings(rows []models.PackagePricing) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for i := range rows {
		out = append(out, PackagePricing(rows[i]))
	}
	return out
}

// GalleryImage renders one gallery row.
func GalleryImage(row models.GalleryImage) gin.H {
	return gin.H{
		"id":           row.ID,
		"url":          row.URL,
		"alt":          row.AltText,
		"category":     string(row.Category),
		"order_index":  row.OrderIndex,
		"storage_path": row.StoragePath,
		"created_at":   timestamp(row.CreatedAt),
	}
}

// GalleryImages renders a gallery collection in order.
func GalleryImages(rows []models.GalleryImage) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for i := range rows {
		out = append(out, GalleryImage(rows[i]))
	}
	return out
}

// Testimonial renders one testimonial row.
func Testimonial(row models.Testimonial) gin.H {
	return gin.H{
		"id":               row.ID,
		"name":             row.Name,
		"location":         row.Location,
		"rating":           row.Rating,
		"text":             row.Text,
		"image":            row.Avatar,
		"source":           string(row.Source),
		"google_review_id": row.GoogleReviewID,
		"is_published":     row.IsPublished,
		"date":             row.DisplayDate,
		"order_index":      row.OrderIndex,
		"created_at":       timestamp(row.CreatedAt),
		"updated_at":       timestamp(row.UpdatedAt),
	}
}

// Testimonials renders a testimonial collection in order.
func Testimonials(rows []models.Testimonial) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for i := range rows {
		out = append(out, Testimonial(rows[i]))
	}
	return out
}
