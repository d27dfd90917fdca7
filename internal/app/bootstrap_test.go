package app

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/thedetailproz/site-backend/internal/models"
	"github.com/thedetailproz/site-backend/internal/security"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := conn.AutoMigrate(&models.Admin{}); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return conn
}

func TestCreateAdminAccount(t *testing.T) {
	conn := openTestDB(t)

	if err := CreateAdminAccount(conn, "Admin@Example.com", "secret-pass"); err != nil {
		t.Fatalf("create: %v", err)
	}

	var admin models.Admin
	if errFind := conn.Where("email = ?", "admin@example.com").First(&admin).Error; errFind != nil {
		t.Fatalf("find admin: %v", errFind)
	}
	if !admin.Active {
		t.Fatal("expected new admin to be active")
	}
	if !security.CheckPassword(admin.Password, "secret-pass") {
		t.Fatal("expected stored hash to verify the password")
	}
}

func TestCreateAdminAccount_ShortPassword(t *testing.T) {
	conn := openTestDB(t)
	if err := CreateAdminAccount(conn, "admin@example.com", "short"); err == nil {
		t.Fatal("expected short password rejection")
	}
}

func TestEnsureAdminFromEnv(t *testing.T) {
	conn := openTestDB(t)
	t.Setenv("ADMIN_EMAIL", "boot@example.com")
	t.Setenv("ADMIN_PASSWORD", "boot-secret")

	if err := EnsureAdminFromEnv(conn); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	exists, err := HasAdminAccount(conn)
	if err != nil {
		t.Fatalf("has admin: %v", err)
	}
	if !exists {
		t.Fatal("expected bootstrap admin to exist")
	}

	// A second pass must not create a duplicate account.
	if err := EnsureAdminFromEnv(conn); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	var count int64
	if errCount := conn.Model(&models.Admin{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count: %v", errCount)
	}
	if count != 1 {
		t.Fatalf("expected a single admin, got %d", count)
	}
}

func TestEnsureAdminFromEnv_Unset(t *testing.T) {
	conn := openTestDB(t)
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	if err := EnsureAdminFromEnv(conn); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	exists, err := HasAdminAccount(conn)
	if err != nil {
		t.Fatalf("has admin: %v", err)
	}
	if exists {
		t.Fatal("expected no admin without bootstrap env")
	}
}
