package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gabrielrealm08/finance-tracker-app/internal/config"
	"github.com/gabrielrealm08/finance-tracker-app/internal/database"
	"github.com/gabrielrealm08/finance-tracker-app/internal/handlers"
	"github.com/gabrielrealm08/finance-tracker-app/internal/logger"
	"github.com/gabrielrealm08/finance-tracker-app/internal/middleware"
	"github.com/gabrielrealm08/finance-tracker-app/internal/services"
	"github.com/gabrielrealm08/finance-tracker-app/internal/validator"
)

// @title           Finance Tracker API
// @version         1.0
// @description     Personal finance ledger: record income and expense transactions and view running totals.

// @host      localhost:5000
// @BasePath  /api

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the store
	dbManager, err := database.NewManager(appConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Services and handlers
	transactionService := services.NewTransactionService(dbManager.DB())
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	// Rate limiter: 300 requests per 15 minutes by default
	limiter := middleware.NewRateLimiter(appConfig.RateLimitMax, appConfig.RateLimitWindow)
	defer limiter.Stop()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(appConfig.ClientOrigin))
	router.Use(limiter.Handler())

	api := router.Group("/api")
	api.GET("/health", handlers.HealthCheck)

	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PATCH("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	log.Infof("Starting Finance Tracker API on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
