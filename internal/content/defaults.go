// Package content carries the built-in dataset served when no content store
// is configured, and used to seed an empty database on first migration.
package content

import (
	"time"

	"github.com/thedetailproz/site-backend/internal/models"
	"gorm.io/datatypes"
)

// Default business contact details.
const (
	DefaultPhoneNumber    = "9033996021"
	DefaultPhoneFormatted = "(903) 399-6021"
	DefaultPhoneLink      = "tel:+19033996021"
	DefaultEmail          = "info@thedetailproz.com"
)

// DefaultAvatar is the placeholder customer avatar used when a review
// carries no profile photo.
const DefaultAvatar = "/assets/customer_avatar_2.png"

// DefaultBusinessSettings returns the built-in settings row.
func DefaultBusinessSettings() models.BusinessSettings {
	return models.BusinessSettings{
		ID:             models.DefaultBusinessSettingsID,
		PhoneNumber:    DefaultPhoneNumber,
		PhoneFormatted: DefaultPhoneFormatted,
		PhoneLink:      DefaultPhoneLink,
		Email:          DefaultEmail,
		UpdatedAt:      time.Now().UTC(),
	}
}

// featureList encodes a feature list as a JSON column value. The inputs are
// fixed literals, so a marshal failure cannot occur at runtime.
func featureList(items ...string) datatypes.JSON {
	out := []byte(`[`)
	for i, item := range items {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '"')
		out = append(out, item...)
		out = append(out, '"')
	}
	out = append(out, ']')
	return datatypes.JSON(out)
}

// DefaultServicePackages returns the three built-in detailing packages in
// display order.
func DefaultServicePackages() []models.ServicePackage {
	now := time.Now().UTC()
	return []models.ServicePackage{
		{
			ID:         "essential-detail",
			Name:       "Essential Detail",
			PriceRange: "$89 - $129",
			Popular:    false,
			Interior: featureList(
				"Vacuum all seats, carpets, and floor mats",
				"Wipe down all interior surfaces",
				"Clean and condition leather/vinyl seats",
				"Clean interior windows and mirrors",
				"Dashboard and console cleaning",
				"Door panel cleaning",
			),
			Exterior: featureList(
				"Hand wash and dry exterior",
				"Wheel and tire cleaning",
				"Exterior window cleaning",
				"Chrome and trim polishing",
				"Basic paint protection spray",
			),
			OrderIndex: 1,
			UpdatedAt:  now,
		},
		{
			ID:         "premium-detail",
			Name:       "Premium Detail",
			PriceRange: "$149 - $199",
			Popular:    true,
			Interior: featureList(
				"Everything in Essential Detail",
				"Deep carpet and upholstery cleaning",
				"Leather conditioning and protection",
				"Air vent cleaning and sanitizing",
				"Cup holder and console deep clean",
				"Interior UV protection treatment",
			),
			Exterior: featureList(
				"Everything in Essential Detail",
				"Clay bar paint decontamination",
				"Paint correction (light scratches)",
				"Premium wax application",
				"Tire shine and dressing",
				"Headlight restoration (if needed)",
			),
			OrderIndex: 2,
			UpdatedAt:  now,
		},
		{
			ID:         "luxury-detail",
			Name:       "Luxury Detail",
			PriceRange: "$249 - $349",
			Popular:    false,
			Interior: featureList(
				"Everything in Premium Detail",
				"Steam cleaning of all surfaces",
				"Premium leather treatment",
				"Odor elimination treatment",
				"Fabric protection application",
				"Complete interior sanitization",
			),
			Exterior: featureList(
				"Everything in Premium Detail",
				"Multi-stage paint correction",
				"Ceramic coating application",
				"Engine bay cleaning",
				"Chrome polishing and protection",
				"6-month paint protection warranty",
			),
			OrderIndex: 3,
			UpdatedAt:  now,
		},
	}
}

// DefaultVehicleSizes returns the built-in vehicle size classes in display
// order.
func DefaultVehicleSizes() []models.VehicleSize {
	now := time.Now().UTC()
	return []models.VehicleSize{
		{ID: "coupe-sedan", Name: "Coupe / Sedan", DisplayOrder: 1, CreatedAt: now},
		{ID: "mid-size-suv", Name: "Mid-Size SUV / Small Truck", DisplayOrder: 2, CreatedAt: now},
		{ID: "full-size-suv", Name: "Full-Size SUV / Truck / Van", DisplayOrder: 3, CreatedAt: now},
	}
}

// DefaultGalleryImages returns the built-in gallery shown when the content
// store is unavailable.
func DefaultGalleryImages() []models.GalleryImage {
	now := time.Now().UTC()
	return []models.GalleryImage{
		{
			ID:         "default-1",
			URL:        "https://images.unsplash.com/photo-1520340356584-f9917d1eea6f?auto=format&fit=crop&w=800&h=600&q=80",
			AltText:    "Car interior cleaning and detailing",
			Category:   models.GalleryCategoryProcess,
			OrderIndex: 1,
			CreatedAt:  now,
		},
		{
			ID:         "default-2",
			URL:        "https://images.unsplash.com/photo-1607860108855-64acf2078ed9?auto=format&fit=crop&w=800&h=600&q=80",
			AltText:    "Professional car detailing equipment and supplies",
			Category:   models.GalleryCategoryProcess,
			OrderIndex: 2,
			CreatedAt:  now,
		},
		{
			ID:         "default-3",
			URL:        "https://images.pexels.com/photos/6872149/pexels-photo-6872149.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&fit=crop",
			AltText:    "Mobile car washing and detailing",
			Category:   models.GalleryCategoryProcess,
			OrderIndex: 3,
			CreatedAt:  now,
		},
		{
			ID:         "default-4",
			URL:        "https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2?auto=format&fit=crop&w=800&h=600&q=80",
			AltText:    "Professional car washing service",
			Category:   models.GalleryCategoryAfter,
			OrderIndex: 4,
			CreatedAt:  now,
		},
		{
			ID:         "default-5",
			URL:        "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&w=800&h=600&q=80",
			AltText:    "Premium car detailing service",
			Category:   models.GalleryCategoryAfter,
			OrderIndex: 5,
			CreatedAt:  now,
		},
	}
}

// DefaultTestimonials returns the built-in published testimonials shown when
// the content store is unavailable.
func DefaultTestimonials() []models.Testimonial {
	now := time.Now().UTC()
	return []models.Testimonial{
		{
			ID:          "default-1",
			Name:        "Sarah Johnson",
			Location:    "Kilgore, TX",
			Rating:      5,
			Text:        "Absolutely amazing service! My car looks brand new. The Detail Proz team was professional, punctual, and exceeded my expectations.",
			Avatar:      "/assets/customer_avatar_2.png",
			Source:      models.TestimonialSourceManual,
			IsPublished: true,
			OrderIndex:  1,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "default-2",
			Name:        "Mike Rodriguez",
			Location:    "Longview, TX",
			Rating:      5,
			Text:        "Best mobile detailing service in East Texas! They came to my office and my truck looked incredible when they finished.",
			Avatar:      "/assets/customer_avatar_3.png",
			Source:      models.TestimonialSourceManual,
			IsPublished: true,
			OrderIndex:  2,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "default-3",
			Name:        "Jennifer Davis",
			Location:    "Tyler, TX",
			Rating:      5,
			Text:        "I was skeptical about mobile detailing, but The Detail Proz proved me wrong. Convenient, professional, and outstanding results!",
			Avatar:      "/assets/customer_avatar_4.png",
			Source:      models.TestimonialSourceManual,
			IsPublished: true,
			OrderIndex:  3,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
