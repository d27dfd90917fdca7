package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/config"
	handlers "github.com/thedetailproz/site-backend/internal/http/api/admin/handlers"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/reviews"
	"github.com/thedetailproz/site-backend/internal/security"
	"github.com/thedetailproz/site-backend/internal/storage"
	"github.com/thedetailproz/site-backend/internal/store"
	"gorm.io/gorm"
)

// RegisterAdminRoutes registers admin routes, middleware, and handlers.
func RegisterAdminRoutes(r *gin.Engine, st *store.Store, jwtCfg config.JWTConfig, objects storage.ObjectStore, importer *reviews.Importer) {
	if r == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(st.DB())
	r.GET("/healthz", healthHandler.Healthz)

	// Admin operations need the content database; in defaults mode only the
	// public site is served.
	if !st.Available() {
		return
	}
	db := st.DB()

	adminGroup := r.Group("/v0/admin")

	authHandler := handlers.NewAuthHandler(db, jwtCfg)
	adminGroup.POST("/login", authHandler.Login)

	authed := adminGroup.Group("")
	authed.Use(adminAuthMiddleware(db, jwtCfg))

	mfaHandler := handlers.NewMFAHandler(db)
	authed.GET("/mfa/status", mfaHandler.Status)
	authed.POST("/mfa/totp/prepare", mfaHandler.PrepareTOTP)
	authed.POST("/mfa/totp/confirm", mfaHandler.ConfirmTOTP)
	authed.POST("/mfa/totp/disable", mfaHandler.DisableTOTP)

	settingsHandler := handlers.NewSettingsHandler(st)
	authed.GET("/settings", settingsHandler.Get)
	authed.PUT("/settings", settingsHandler.Update)

	packageHandler := handlers.NewPackageHandler(st)
	authed.GET("/packages", packageHandler.List)
	authed.POST("/packages", packageHandler.Create)
	authed.PUT("/packages/:id", packageHandler.Update)
	authed.DELETE("/packages/:id", packageHandler.Delete)

	vehicleSizeHandler := handlers.NewVehicleSizeHandler(st)
	authed.GET("/vehicle-sizes", vehicleSizeHandler.List)
	authed.POST("/vehicle-sizes", vehicleSizeHandler.Create)
	authed.PUT("/vehicle-sizes/:id", vehicleSizeHandler.Update)
	authed.DELETE("/vehicle-sizes/:id", vehicleSizeHandler.Delete)

	pricingHandler := handlers.NewPricingHandler(st)
	authed.GET("/pricing", pricingHandler.List)
	authed.PUT("/pricing", pricingHandler.Upsert)

	galleryHandler := handlers.NewGalleryHandler(st, objects)
	authed.GET("/gallery", galleryHandler.List)
	authed.POST("/gallery", galleryHandler.Create)
	authed.POST("/gallery/upload", galleryHandler.Upload)
	authed.PUT("/gallery/:id", galleryHandler.Update)
	authed.DELETE("/gallery/:id", galleryHandler.Delete)

	testimonialHandler := handlers.NewTestimonialHandler(st)
	authed.GET("/testimonials", testimonialHandler.List)
	authed.POST("/testimonials", testimonialHandler.Create)
	authed.PUT("/testimonials/:id", testimonialHandler.Update)
	authed.DELETE("/testimonials/:id", testimonialHandler.Delete)

	reviewHandler := handlers.NewReviewHandler(importer)
	authed.POST("/reviews/import", reviewHandler.Import)
}

// adminAuthMiddleware validates admin JWTs and loads admin context.
func adminAuthMiddleware(db *gorm.DB, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
			return
		}

		claims, errJWT := security.ParseAdminToken(jwtCfg.Secret, token)
		if errJWT != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var admin models.Admin
		if errFind := db.WithContext(c.Request.Context()).Where("id = ?", claims.AdminID).First(&admin).Error; errFind != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			return
		}
		if !admin.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin disabled"})
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminEmail", admin.Email)
		c.Next()
	}
}
