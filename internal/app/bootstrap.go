package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thedetailproz/site-backend/internal/config"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/security"
	"gorm.io/gorm"

	log "github.com/sirupsen/logrus"
)

// minAdminPasswordLen is the minimum accepted bootstrap password length.
const minAdminPasswordLen = 6

// HasAdminAccount reports whether at least one admin account exists.
func HasAdminAccount(conn *gorm.DB) (bool, error) {
	if conn == nil {
		return false, fmt.Errorf("app: nil db")
	}
	if !conn.Migrator().HasTable(&models.Admin{}) {
		return false, nil
	}
	var count int64
	if errCount := conn.Model(&models.Admin{}).Count(&count).Error; errCount != nil {
		return false, errCount
	}
	return count > 0, nil
}

// EnsureAdminFromEnv creates the first admin account from the ADMIN_EMAIL
// and ADMIN_PASSWORD environment variables. It does nothing when an admin
// already exists or when the variables are unset.
func EnsureAdminFromEnv(conn *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv(config.EnvAdminEmail)))
	password := os.Getenv(config.EnvAdminPassword)
	if email == "" || password == "" {
		return nil
	}

	exists, errExists := HasAdminAccount(conn)
	if errExists != nil {
		return errExists
	}
	if exists {
		return nil
	}

	if errCreate := CreateAdminAccount(conn, email, password); errCreate != nil {
		return errCreate
	}
	log.Infof("created bootstrap admin account %s", email)
	return nil
}

// CreateAdminAccount creates an active admin account with a hashed password.
func CreateAdminAccount(conn *gorm.DB, email, password string) error {
	if conn == nil {
		return fmt.Errorf("app: nil db")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("app: admin email is required")
	}
	if len(password) < minAdminPasswordLen {
		return fmt.Errorf("app: admin password must be at least %d characters", minAdminPasswordLen)
	}

	hashedPassword, errHash := security.HashPassword(password)
	if errHash != nil {
		return fmt.Errorf("app: hash password: %w", errHash)
	}

	now := time.Now().UTC()
	admin := models.Admin{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashedPassword,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if errCreate := conn.Create(&admin).Error; errCreate != nil {
		return fmt.Errorf("app: create admin: %w", errCreate)
	}
	return nil
}
