// Package front wires the public, unauthenticated site API.
package front

import (
	"github.com/gin-gonic/gin"
	handlers "github.com/thedetailproz/site-backend/internal/http/api/front/handlers"
	"github.com/thedetailproz/site-backend/internal/mail"
	"github.com/thedetailproz/site-backend/internal/store"
)

// RegisterFrontRoutes registers the public site routes. The store may be
// unavailable; content handlers fall back to built-in defaults.
func RegisterFrontRoutes(r *gin.Engine, st *store.Store, mailer mail.Mailer, businessEmail string) {
	if r == nil {
		return
	}

	siteGroup := r.Group("/v0/site")

	contentHandler := handlers.NewContentHandler(st)
	siteGroup.GET("/settings", contentHandler.Settings)
	siteGroup.GET("/packages", contentHandler.Packages)
	siteGroup.GET("/gallery", contentHandler.Gallery)
	siteGroup.GET("/testimonials", contentHandler.Testimonials)

	contactHandler := handlers.NewContactHandler(mailer, businessEmail)
	siteGroup.POST("/contact", contactHandler.Submit)
}
