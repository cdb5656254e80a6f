package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vibetechlabs-developer/News-Portal-1/internal/config"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/database"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/middleware"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/models"
	"github.com/vibetechlabs-developer/News-Portal-1/internal/routes"
	"github.com/vibetechlabs-developer/News-Portal-1/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting News Portal Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("🔄 Running Database Migrations (Stage 1: Tables)...")

	// Circular references (User <-> NewsArticle author/reviewer) need the
	// tables in place before the constraints.
	database.DB.Config.DisableForeignKeyConstraintWhenMigrating = true

	tableModels := []interface{}{
		&models.User{},
		&models.Section{},
		&models.Category{},
		&models.Tag{},
		&models.District{},
		&models.NewsArticle{},
		&models.Media{},
		&models.VideoContent{},
		&models.ReelContent{},
		&models.EpaperEdition{},
		&models.Comment{},
		&models.Like{},
		&models.ArticleView{},
		&models.JobPosting{},
		&models.JobApplication{},
		&models.ApplicationReview{},
		&models.Notification{},
		&models.ContactMessage{},
		&models.AdSenseSlot{},
		&models.Advertisement{},
		&models.AdvertisementRequest{},
		&models.SiteSettings{},
	}

	for _, m := range tableModels {
		if err := database.DB.AutoMigrate(m); err != nil {
			logger.Fatal().Err(err).Msgf("Failed to migrate table for %T", m)
		}
	}

	logger.Info().Msg("🔄 Running Database Migrations (Stage 2: Constraints)...")
	database.DB.Config.DisableForeignKeyConstraintWhenMigrating = false
	if err := database.DB.AutoMigrate(tableModels...); err != nil {
		logger.Fatal().Err(err).Msg("Failed to add database constraints")
	}
	logger.Info().Msg("✅ Database Migrations Complete")

	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		// Login stays reachable during maintenance so admins can turn it off.
		routes.RegisterAuthRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.OptionalAuthMiddleware(), middleware.MaintenanceMode())

		routes.RegisterTaxonomyRoutes(protected)
		routes.RegisterNewsRoutes(protected)
		routes.RegisterClipRoutes(protected)
		routes.RegisterCareerRoutes(protected)
		routes.RegisterContactRoutes(protected)
		routes.RegisterAdRoutes(protected)
		routes.RegisterCricketRoutes(protected)
		routes.RegisterUploadRoutes(protected)
		routes.RegisterAnalyticsRoutes(api) // dashboard bypasses maintenance
		routes.RegisterSettingsRoutes(api)  // settings must stay writable to exit maintenance
	}

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "News Portal Backend is running 🚀",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
