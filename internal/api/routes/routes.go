package routes

import (
	"log"

	"session-booking-backend/internal/api/handlers"
	"session-booking-backend/internal/api/middleware"
	"session-booking-backend/internal/config"
	"session-booking-backend/internal/repository"
	"session-booking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	ruleRepo := repository.NewRuleRepository(db)
	exceptionRepo := repository.NewExceptionRepository(db)
	occurrenceRepo := repository.NewOccurrenceRepository(db)

	// Initialize services
	ruleService := service.NewRuleService(ruleRepo, exceptionRepo, occurrenceRepo, validator)
	occurrenceService := service.NewOccurrenceService(occurrenceRepo, validator)
	generationService := service.NewGenerationService(ruleRepo, occurrenceRepo)
	resolver, err := service.NewResolver(cfg.ResolverStrategy, ruleRepo, exceptionRepo, occurrenceRepo)
	if err != nil {
		// Config validation catches bad strategies before this point
		log.Printf("Warning: %v, falling back to virtual resolution", err)
		resolver = service.NewVirtualResolver(ruleRepo, exceptionRepo, occurrenceRepo)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	ruleHandler := handlers.NewRuleHandler(ruleService, generationService)
	occurrenceHandler := handlers.NewOccurrenceHandler(occurrenceService)
	calendarHandler := handlers.NewCalendarHandler(resolver)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Recurrence rule routes
		rules := v1.Group("/rules")
		{
			rules.GET("", ruleHandler.ListRules)
			rules.POST("", ruleHandler.CreateRule)
			rules.POST("/generate", ruleHandler.GenerateOccurrences)
			rules.GET("/:id", ruleHandler.GetRule)
			rules.PATCH("/:id", ruleHandler.UpdateRule)
			rules.DELETE("/:id", ruleHandler.DeleteRule)
			rules.PATCH("/:id/occurrences/:date", ruleHandler.ManageRuleOccurrence)
			rules.DELETE("/:id/occurrences/:date", ruleHandler.CancelRuleOccurrence)
		}

		// Occurrence routes
		occurrences := v1.Group("/occurrences")
		{
			occurrences.GET("", occurrenceHandler.ListOccurrences) // Requires start and end parameters
			occurrences.POST("", occurrenceHandler.CreateOccurrence)
			occurrences.GET("/:id", occurrenceHandler.GetOccurrence)
			occurrences.PATCH("/:id", occurrenceHandler.UpdateOccurrence)
			occurrences.POST("/:id/cancel", occurrenceHandler.CancelOccurrence)
			occurrences.POST("/:id/complete", occurrenceHandler.CompleteOccurrence)
		}

		// Calendar routes
		calendar := v1.Group("/calendar")
		{
			calendar.GET("", calendarHandler.GetCalendar) // Requires start and end parameters
			calendar.GET("/feed.ics", calendarHandler.GetCalendarFeed)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
