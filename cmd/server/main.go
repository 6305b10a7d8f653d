package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zaid-maker/git-wrapped-api/internal/handlers"
	"github.com/Zaid-maker/git-wrapped-api/internal/middleware"
	"github.com/Zaid-maker/git-wrapped-api/internal/services"
	"github.com/Zaid-maker/git-wrapped-api/pkg/config"
	"github.com/Zaid-maker/git-wrapped-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize services
	githubService := services.NewGitHubService(cfg)
	statsService := services.NewStatisticsService()
	wrappedService := services.NewWrappedService(githubService, statsService, cfg)
	networkService := services.NewNetworkService(githubService, wrappedService, statsService, cfg)
	repositoryService := services.NewRepositoryService(githubService, cfg)
	exportService := services.NewExportService()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// Setup routes
	setupRoutes(router, cfg, wrappedService, networkService, repositoryService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	wrappedService *services.WrappedService,
	networkService *services.NetworkService,
	repositoryService *services.RepositoryService,
	exportService *services.ExportService,
) {
	// Initialize handlers
	wrappedHandler := handlers.NewWrappedHandler(wrappedService)
	networkHandler := handlers.NewNetworkHandler(networkService, cfg)
	repositoryHandler := handlers.NewRepositoryHandler(repositoryService, cfg)
	exportHandler := handlers.NewExportHandler(wrappedService, exportService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	api := router.Group("/api")
	{
		api.GET("/wrapped/:username", wrappedHandler.GetWrapped)

		users := api.Group("/users")
		{
			users.GET("/:username/calendar", wrappedHandler.GetCalendar)
			users.GET("/:username/repositories", repositoryHandler.ListRepositories)
			users.GET("/:username/network", networkHandler.GetNetwork)
			users.GET("/:username/export", exportHandler.ExportWrapped)
		}
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
