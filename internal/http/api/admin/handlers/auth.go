package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thedetailproz/site-backend/internal/config"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/security"
	"gorm.io/gorm"
)

// AuthHandler serves admin login.
type AuthHandler struct {
	db     *gorm.DB         // Admin account lookup.
	jwtCfg config.JWTConfig // Token signing settings.
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(db *gorm.DB, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{db: db, jwtCfg: jwtCfg}
}

// loginRequest captures the login payload. The TOTP code is required only
// when the account has the second factor enabled.
type loginRequest struct {
	Email    string `json:"email"`     // Login email.
	Password string `json:"password"`  // Plaintext password.
	TOTPCode string `json:"totp_code"` // Current TOTP code, optional.
}

// Login checks credentials (and TOTP when enabled) and issues a session
// token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	var admin models.Admin
	if errFind := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&admin).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if !admin.Active || !security.CheckPassword(admin.Password, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if admin.TOTPSecret != "" {
		if strings.TrimSpace(body.TOTPCode) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "totp code required", "totp_required": true})
			return
		}
		if !security.ValidateTOTP(admin.TOTPSecret, strings.TrimSpace(body.TOTPCode)) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid totp code"})
			return
		}
	}

	token, errToken := security.NewAdminToken(h.jwtCfg.Secret, admin.ID, h.jwtCfg.Expiry)
	if errToken != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}
