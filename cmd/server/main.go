package main

import (
	"log"
	"os"

	"session-booking-backend/internal/api/routes"
	"session-booking-backend/internal/config"
	"session-booking-backend/internal/database"
	"session-booking-backend/internal/repository"
	"session-booking-backend/internal/scheduler"
	"session-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "session-booking-backend/docs" // This is needed for swag
)

//	@title			Session Booking Backend API
//	@version		1.0
//	@description	Backend API for managing weekly recurring session rules, per-date exceptions and concrete bookable occurrences.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start the in-process generation scheduler when configured
	if cfg.GenerationCron != "" {
		generationService := service.NewGenerationService(
			repository.NewRuleRepository(db),
			repository.NewOccurrenceRepository(db),
		)
		sched := scheduler.New(generationService, cfg.GenerationDaysAhead)
		if err := sched.Start(cfg.GenerationCron); err != nil {
			logrus.Fatal("Failed to start generation scheduler:", err)
		}
		defer sched.Stop()
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
