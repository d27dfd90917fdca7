// Package app wires configuration, storage, and HTTP routing into the
// runnable site backend.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/thedetailproz/site-backend/internal/config"
	"github.com/thedetailproz/site-backend/internal/content"
	"github.com/thedetailproz/site-backend/internal/db"
	adminapi "github.com/thedetailproz/site-backend/internal/http/api/admin"
	"github.com/thedetailproz/site-backend/internal/http/api/front"
	"github.com/thedetailproz/site-backend/internal/mail"
	"github.com/thedetailproz/site-backend/internal/reviews"
	"github.com/thedetailproz/site-backend/internal/storage"
	"github.com/thedetailproz/site-backend/internal/store"
	"gorm.io/gorm"

	log "github.com/sirupsen/logrus"
)

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg config.AppConfig) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	dsn, err := config.LoadDatabaseDSN(configPath)
	if err != nil {
		return err
	}
	conn, err := db.Open(dsn)
	if err != nil {
		return err
	}
	return db.Migrate(conn)
}

// RunServer boots the site backend. Without a database DSN it serves the
// public site from built-in defaults; admin routes require the database.
func RunServer(ctx context.Context, cfg config.AppConfig, defaultPort int) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)

	settings, errSettings := config.LoadSiteSettings(configPath)
	if errSettings != nil {
		return errSettings
	}
	jwtConfig := config.LoadJWTConfig(configPath)

	conn, errConn := openDatabase(configPath)
	if errConn != nil {
		return errConn
	}

	var objects storage.ObjectStore
	if conn != nil {
		localStore, errStore := storage.NewLocalStore(settings.Storage.Dir, settings.Storage.BaseURL)
		if errStore != nil {
			return errStore
		}
		objects = localStore
	}
	st := store.New(conn, objects)

	if conn != nil {
		if errBootstrap := EnsureAdminFromEnv(conn); errBootstrap != nil {
			return errBootstrap
		}
	}

	importer := buildImporter(st, settings.GooglePlaces)

	businessEmail := settings.Site.BusinessEmail
	if businessEmail == "" {
		businessEmail = content.DefaultEmail
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware(settings.Site.AllowedOrigins))

	adminapi.RegisterAdminRoutes(engine, st, jwtConfig, objects, importer)
	front.RegisterFrontRoutes(engine, st, mail.LogMailer{}, businessEmail)
	if conn != nil {
		engine.Static(settings.Storage.BaseURL, settings.Storage.Dir)
	}

	scheduler := startReviewSchedule(ctx, importer, settings.Reviews.SyncSchedule)
	if scheduler != nil {
		defer scheduler.Stop()
	}

	if defaultPort <= 0 {
		defaultPort = 8318
	}
	addr := fmt.Sprintf(":%d", defaultPort)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			log.Errorf("server shutdown error: %v", errShutdown)
		}
	}()

	if conn == nil {
		log.Warn("no database dsn configured, serving built-in defaults only")
	}
	log.Infof("starting site backend on %s (config=%s)", addr, configPath)
	if errListen := srv.ListenAndServe(); errListen != nil && !errors.Is(errListen, http.ErrServerClosed) {
		return errListen
	}
	return nil
}

// openDatabase connects and migrates the content database. A missing DSN is
// not an error; the caller runs in defaults mode with a nil connection.
func openDatabase(configPath string) (*gorm.DB, error) {
	dsn, errDSN := config.LoadDatabaseDSN(configPath)
	if errDSN != nil {
		if errors.Is(errDSN, config.ErrMissingDatabaseDSN) {
			return nil, nil
		}
		return nil, errDSN
	}
	conn, errOpen := db.Open(dsn)
	if errOpen != nil {
		return nil, errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return nil, errMigrate
	}
	return conn, nil
}

// buildImporter constructs the review importer when Google Places
// credentials are configured. An unconfigured importer still exists so the
// admin trigger can report the misconfiguration.
func buildImporter(st *store.Store, placesCfg config.GooglePlacesConfig) *reviews.Importer {
	client, errClient := reviews.NewPlacesClient(placesCfg)
	if errClient != nil {
		return reviews.NewImporter(st, nil)
	}
	return reviews.NewImporter(st, client)
}

// startReviewSchedule runs periodic review imports when a cron expression is
// configured. Returns nil when scheduling is disabled.
func startReviewSchedule(ctx context.Context, importer *reviews.Importer, schedule string) *cron.Cron {
	if schedule == "" {
		return nil
	}

	c := cron.New()
	_, errAdd := c.AddFunc(schedule, func() {
		result, errRun := importer.Run(ctx)
		if errRun != nil {
			if errors.Is(errRun, reviews.ErrNotConfigured) {
				return
			}
			log.WithError(errRun).Error("scheduled review import failed")
			return
		}
		log.WithFields(log.Fields{
			"imported": result.Imported,
			"total":    result.Total,
		}).Info("scheduled review import completed")
	})
	if errAdd != nil {
		log.WithError(errAdd).Errorf("invalid review sync schedule %q", schedule)
		return nil
	}
	c.Start()
	return c
}

// corsMiddleware builds the CORS policy for the browser frontend. An empty
// origin list allows all origins.
func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return cors.New(corsCfg)
}
