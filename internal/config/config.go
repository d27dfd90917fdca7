package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by the loader.
const (
	EnvConfigPath      = "CONFIG_PATH"
	EnvDBConnection    = "DB_CONNECTION"
	EnvJWTSecret       = "JWT_SECRET"
	EnvJWTExpiry       = "JWT_EXPIRY"
	EnvGooglePlacesKey = "GOOGLE_PLACES_API_KEY"
	EnvGooglePlaceID   = "GOOGLE_PLACE_ID"
	EnvStorageDir      = "STORAGE_DIR"
	EnvBusinessEmail   = "BUSINESS_EMAIL"
	EnvReviewSyncCron  = "REVIEW_SYNC_CRON"
	EnvAllowedOrigins  = "ALLOWED_ORIGINS"
	EnvAdminEmail      = "ADMIN_EMAIL"
	EnvAdminPassword   = "ADMIN_PASSWORD"
)

// AppConfig holds resolved application configuration values.
type AppConfig struct {
	ConfigPath string
}

// LoadFromEnv loads app config from environment variables.
func LoadFromEnv() (AppConfig, error) {
	return AppConfig{ConfigPath: ResolveConfigPath(os.Getenv(EnvConfigPath))}, nil
}

// ResolveConfigPath normalizes the config path and applies defaults.
func ResolveConfigPath(p string) string {
	trimmed := strings.TrimSpace(p)
	if trimmed == "" {
		trimmed = "./config.yaml"
	}
	if abs, err := filepath.Abs(trimmed); err == nil {
		return abs
	}
	return trimmed
}

// ErrMissingDatabaseDSN indicates no database DSN is present in the config
// file or environment. Callers treat this as "run on built-in defaults",
// not as a fatal error.
var ErrMissingDatabaseDSN = errors.New("missing database dsn (set `database-dsn` or `database.dsn` in config file)")

// LoadDatabaseDSN reads the database DSN from the YAML config file, with the
// DB_CONNECTION environment variable taking precedence.
func LoadDatabaseDSN(configPath string) (string, error) {
	if dsn := strings.TrimSpace(os.Getenv(EnvDBConnection)); dsn != "" {
		return dsn, nil
	}

	// fileConfig maps the YAML fields needed for DSN resolution.
	type fileConfig struct {
		DatabaseDSN string `yaml:"database-dsn"`
		Database    struct {
			DSN string `yaml:"dsn"`
		} `yaml:"database"`
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrMissingDatabaseDSN
		}
		return "", fmt.Errorf("read config file: %w", err)
	}

	var cfg fileConfig
	if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal != nil {
		return "", fmt.Errorf("parse config file: %w", errUnmarshal)
	}

	if dsn := strings.TrimSpace(cfg.DatabaseDSN); dsn != "" {
		return dsn, nil
	}
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		return dsn, nil
	}
	return "", ErrMissingDatabaseDSN
}

// JWTConfig holds JWT secret and expiry settings.
type JWTConfig struct {
	Secret string        `yaml:"secret"`
	Expiry time.Duration `yaml:"expiry"`
}

// defaultJWTExpiry is used when the config omits or invalidates JWT expiry.
const defaultJWTExpiry = 24 * time.Hour

// LoadJWTConfig loads JWT settings from the YAML config file with env
// overrides. A missing or malformed file falls back to defaults.
func LoadJWTConfig(configPath string) JWTConfig {
	// fileConfig maps the YAML fields needed for JWT settings.
	type fileConfig struct {
		JWT JWTConfig `yaml:"jwt"`
	}

	result := JWTConfig{Expiry: defaultJWTExpiry}

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		var cfg fileConfig
		if errUnmarshal := yaml.Unmarshal(data, &cfg); errUnmarshal == nil {
			result = cfg.JWT
		}
	}

	if secret := strings.TrimSpace(os.Getenv(EnvJWTSecret)); secret != "" {
		result.Secret = secret
	}
	if expiryRaw := strings.TrimSpace(os.Getenv(EnvJWTExpiry)); expiryRaw != "" {
		if expiry, errParse := time.ParseDuration(expiryRaw); errParse == nil && expiry > 0 {
			result.Expiry = expiry
		}
	}

	if result.Expiry <= 0 {
		result.Expiry = defaultJWTExpiry
	}
	return result
}

// GooglePlacesConfig holds credentials for the review importer.
type GooglePlacesConfig struct {
	APIKey  string `yaml:"api-key"`
	PlaceID string `yaml:"place-id"`
}

// Configured reports whether both credential fields are present.
func (c GooglePlacesConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.PlaceID) != ""
}

// SiteConfig holds public-site settings.
type SiteConfig struct {
	// AllowedOrigins lists CORS origins for the browser frontend.
	AllowedOrigins []string `yaml:"allowed-origins"`
	// BusinessEmail receives contact-form submissions.
	BusinessEmail string `yaml:"business-email"`
}

// ReviewsConfig holds review importer scheduling settings.
type ReviewsConfig struct {
	// SyncSchedule is an optional cron expression for periodic imports;
	// empty disables the schedule.
	SyncSchedule string `yaml:"sync-schedule"`
}

// StorageConfig holds file-store settings for gallery uploads.
type StorageConfig struct {
	// Dir is the root directory of the local object store.
	Dir string `yaml:"dir"`
	// BaseURL prefixes stored object paths to form public URLs.
	BaseURL string `yaml:"base-url"`
}

// SiteSettings bundles the non-database configuration surface.
type SiteSettings struct {
	GooglePlaces GooglePlacesConfig `yaml:"google-places"`
	Site         SiteConfig         `yaml:"site"`
	Reviews      ReviewsConfig      `yaml:"reviews"`
	Storage      StorageConfig      `yaml:"storage"`
}

// LoadSiteSettings loads the remaining settings from the YAML config file
// with env overrides. A missing file yields defaults, not an error.
func LoadSiteSettings(configPath string) (SiteSettings, error) {
	var result SiteSettings

	data, errRead := os.ReadFile(configPath)
	if errRead == nil {
		if errUnmarshal := yaml.Unmarshal(data, &result); errUnmarshal != nil {
			return SiteSettings{}, fmt.Errorf("parse config file: %w", errUnmarshal)
		}
	} else if !os.IsNotExist(errRead) {
		return SiteSettings{}, fmt.Errorf("read config file: %w", errRead)
	}

	if key := strings.TrimSpace(os.Getenv(EnvGooglePlacesKey)); key != "" {
		result.GooglePlaces.APIKey = key
	}
	if placeID := strings.TrimSpace(os.Getenv(EnvGooglePlaceID)); placeID != "" {
		result.GooglePlaces.PlaceID = placeID
	}
	if dir := strings.TrimSpace(os.Getenv(EnvStorageDir)); dir != "" {
		result.Storage.Dir = dir
	}
	if email := strings.TrimSpace(os.Getenv(EnvBusinessEmail)); email != "" {
		result.Site.BusinessEmail = email
	}
	if schedule := strings.TrimSpace(os.Getenv(EnvReviewSyncCron)); schedule != "" {
		result.Reviews.SyncSchedule = schedule
	}
	if origins := strings.TrimSpace(os.Getenv(EnvAllowedOrigins)); origins != "" {
		parts := strings.Split(origins, ",")
		cleaned := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		result.Site.AllowedOrigins = cleaned
	}

	if result.Storage.Dir == "" {
		result.Storage.Dir = "./data/gallery"
	}
	if result.Storage.BaseURL == "" {
		result.Storage.BaseURL = "/gallery"
	}
	return result, nil
}
