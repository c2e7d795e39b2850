package routes

import (
	"CareLink/cache"
	"CareLink/config"
	"CareLink/controllers"
	"CareLink/handlers"
	"CareLink/middlewares"
	"CareLink/monitoring"
	"CareLink/repositories"
	"CareLink/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Request id, logging and metrics middleware
	router.Use(middlewares.RequestIDMiddleware())
	router.Use(middlewares.LoggingMiddleware())
	router.Use(middlewares.PrometheusMetrics())

	// Initialize repositories, services, and handlers
	accountRepo := repositories.NewAccountRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db, cache)
	doctorRepo := repositories.NewDoctorRepository(db, cache)
	mappingRepo := repositories.NewMappingRepository(db, cache)

	accountService := services.NewAccountService(accountRepo)
	patientService := services.NewPatientService(patientRepo)
	doctorService := services.NewDoctorService(doctorRepo)
	mappingService := services.NewMappingService(mappingRepo, patientRepo, doctorRepo)

	authHandler := handlers.NewAuthHandler(accountService)
	patientHandler := handlers.NewPatientHandler(patientService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	mappingHandler := handlers.NewMappingHandler(mappingService)

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupHealthcareRoutes(router, patientHandler, doctorHandler, mappingHandler)

	controllers.SetupRootRoute(router)
	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	return router
}
