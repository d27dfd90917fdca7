package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	db *gorm.DB // Content database handle, may be nil in defaults mode.
}

// NewHealthHandler constructs a health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz reports process liveness and database reachability.
func (h *HealthHandler) Healthz(c *gin.Context) {
	status := gin.H{"status": "ok"}
	if h.db == nil {
		status["database"] = "unconfigured"
		c.JSON(http.StatusOK, status)
		return
	}

	sqlDB, errDB := h.db.DB()
	if errDB != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	status["database"] = "ok"
	c.JSON(http.StatusOK, status)
}
