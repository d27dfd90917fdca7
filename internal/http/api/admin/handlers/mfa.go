package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/security"
	"gorm.io/gorm"
)

// MFAHandler manages the optional TOTP second factor for the signed-in
// admin.
type MFAHandler struct {
	db *gorm.DB // Admin account storage.
}

// NewMFAHandler constructs an MFA handler.
func NewMFAHandler(db *gorm.DB) *MFAHandler {
	return &MFAHandler{db: db}
}

// currentAdmin loads the admin identified by the auth middleware.
func (h *MFAHandler) currentAdmin(c *gin.Context) (models.Admin, bool) {
	adminID, _ := c.Get("adminID")
	id, _ := adminID.(string)
	var admin models.Admin
	if errFind := h.db.WithContext(c.Request.Context()).Where("id = ?", id).First(&admin).Error; errFind != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
		return models.Admin{}, false
	}
	return admin, true
}

// Status reports whether TOTP is enabled for the signed-in admin.
func (h *MFAHandler) Status(c *gin.Context) {
	admin, ok := h.currentAdmin(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"totp_enabled": admin.TOTPSecret != ""})
}

// PrepareTOTP generates a pending TOTP secret for the signed-in admin. The
// secret is not persisted until a code is confirmed.
func (h *MFAHandler) PrepareTOTP(c *gin.Context) {
	admin, ok := h.currentAdmin(c)
	if !ok {
		return
	}
	if admin.TOTPSecret != "" {
		c.JSON(http.StatusConflict, gin.H{"error": "totp already enabled"})
		return
	}

	secret, url, errGenerate := security.GenerateTOTPSecret(admin.Email)
	if errGenerate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generate totp secret failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"secret": secret, "url": url})
}

// confirmTOTPRequest captures the confirmation payload.
type confirmTOTPRequest struct {
	Secret string `json:"secret"` // Secret from PrepareTOTP.
	Code   string `json:"code"`   // Current TOTP code.
}

// ConfirmTOTP validates a code against the pending secret and enables TOTP.
func (h *MFAHandler) ConfirmTOTP(c *gin.Context) {
	admin, ok := h.currentAdmin(c)
	if !ok {
		return
	}

	var body confirmTOTPRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	secret := strings.TrimSpace(body.Secret)
	code := strings.TrimSpace(body.Code)
	if secret == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "secret and code are required"})
		return
	}
	if !security.ValidateTOTP(secret, code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid totp code"})
		return
	}

	updates := map[string]any{"totp_secret": secret, "updated_at": time.Now().UTC()}
	if errUpdate := h.db.WithContext(c.Request.Context()).Model(&admin).Updates(updates).Error; errUpdate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "enable totp failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totp_enabled": true})
}

// DisableTOTP removes the TOTP secret for the signed-in admin.
func (h *MFAHandler) DisableTOTP(c *gin.Context) {
	admin, ok := h.currentAdmin(c)
	if !ok {
		return
	}

	updates := map[string]any{"totp_secret": "", "updated_at": time.Now().UTC()}
	if errUpdate := h.db.WithContext(c.Request.Context()).Model(&admin).Updates(updates).Error; errUpdate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "disable totp failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totp_enabled": false})
}
