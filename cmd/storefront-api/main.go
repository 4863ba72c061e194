package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/harborlane/storefront-api/api/swagger"
	"github.com/harborlane/storefront-api/internal/handler"
	"github.com/harborlane/storefront-api/internal/middleware"
	"github.com/harborlane/storefront-api/internal/repository"
	"github.com/harborlane/storefront-api/internal/service"
	"github.com/harborlane/storefront-api/pkg/cache"
	"github.com/harborlane/storefront-api/pkg/config"
	"github.com/harborlane/storefront-api/pkg/database"
	"github.com/harborlane/storefront-api/pkg/logger"
	corsmiddleware "github.com/harborlane/storefront-api/pkg/middleware/cors"
	reqidmiddleware "github.com/harborlane/storefront-api/pkg/middleware/requestid"
)

// @title Storefront Hours API
// @version 1.0.0
// @description Store schedule, bookable slots and timezone presentation
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logr.Fatal("failed to prepare schema", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// Redis only backs the slot cache and device preferences; the API
		// stays up without it.
		logr.Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()
	locations := service.SystemLocationResolver{}

	metricsService := service.NewMetricsService()
	scheduleService := service.NewScheduleService(locations, validate, logr)
	slotService := service.NewSlotService(scheduleService, cfg.Schedule.SlotInterval, logr)
	reminderService := service.NewReminderService(scheduleService, cfg.Reminder.Lead, logr)
	presentationService := service.NewPresentationService(cfg.Cities, locations, logr)
	authService := service.NewAuthService(cfg.Admin, cfg.JWT, logr)

	hoursRepo := repository.NewHoursRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, cfg.Cache.SlotTTL)

	snapshot := service.NewSnapshotProvider(hoursRepo, overrideRepo, scheduleService, cfg.Schedule.Timezone, logr)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	fromStorage := snapshot.Refresh(ctx)
	cancel()
	metricsService.ObserveRefresh(fromStorage)
	if !fromStorage {
		logr.Warn("serving default schedule until storage recovers")
	}

	hoursService := service.NewHoursService(hoursRepo, overrideRepo, scheduleService, snapshot, cfg.Schedule.Timezone, validate, logr)

	statusHandler := handler.NewStatusHandler(snapshot, scheduleService, presentationService, cacheRepo)
	slotsHandler := handler.NewSlotsHandler(snapshot, slotService, presentationService, cacheRepo, metricsService)
	reminderHandler := handler.NewReminderHandler(snapshot, reminderService)
	preferenceHandler := handler.NewPreferenceHandler(cacheRepo)
	hoursHandler := handler.NewHoursHandler(snapshot, hoursService, metricsService)
	authHandler := handler.NewAuthHandler(authService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/status", statusHandler.Status)
		api.GET("/days/:date", statusHandler.Day)
		api.GET("/slots", slotsHandler.List)
		api.GET("/slots/export", slotsHandler.Export)
		api.GET("/next-opening", reminderHandler.NextOpening)
		api.GET("/schedule", hoursHandler.Schedule)
		api.GET("/preferences/:device", preferenceHandler.Get)
		api.PUT("/preferences/:device", preferenceHandler.Put)
		api.POST("/auth/login", authHandler.Login)

		admin := api.Group("/admin", middleware.JWT(authService))
		{
			admin.PUT("/hours", hoursHandler.ReplaceWeekly)
			admin.PUT("/overrides", hoursHandler.UpsertOverride)
			admin.DELETE("/overrides/:date", hoursHandler.DeleteOverride)
			admin.POST("/refresh", hoursHandler.Refresh)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store_timezone", cfg.Schedule.Timezone)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
