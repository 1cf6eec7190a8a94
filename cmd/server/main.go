package main

import (
	"log/slog"
	"os"

	"github.com/argumentor/analysis-service/internal/cache"
	"github.com/argumentor/analysis-service/internal/config"
	"github.com/argumentor/analysis-service/internal/handlers"
	"github.com/argumentor/analysis-service/internal/repositories/postgres"
	"github.com/argumentor/analysis-service/internal/services"
	"github.com/argumentor/analysis-service/internal/utils"
	"github.com/argumentor/analysis-service/internal/validator"
	"github.com/argumentor/analysis-service/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if cfg.Environment == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	eventConfig := config.LoadEventConfig()
	publisher, err := eventConfig.CreateEventPublisher(logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	cacheService := cache.NewRedisCache(redisClient, logger)

	serviceManager := services.NewServiceManager(repo, cacheService, publisher, logger, validator.New())

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := utils.NewSlogLogger(logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(appLogger))

	handlers.InitAuth(cfg)
	handlerManager := handlers.NewHandlerManager(serviceManager, appLogger)
	handlerManager.SetupRoutes(router, cfg)

	logger.Info("Starting analysis service",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"auth_enabled", cfg.AuthEnabled)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
