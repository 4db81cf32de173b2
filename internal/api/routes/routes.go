package routes

import (
	"house-rental-backend/internal/api/handlers"
	"house-rental-backend/internal/api/middleware"
	"house-rental-backend/internal/auth"
	"house-rental-backend/internal/config"
	"house-rental-backend/internal/events"
	"house-rental-backend/internal/repository"
	"house-rental-backend/internal/service"
	"house-rental-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the infrastructure components the router is built on
type Dependencies struct {
	Images    storage.ImageStore
	Publisher events.Publisher
	Sessions  *auth.SessionManager
	// HealthChecks are reported by the health endpoints next to the database
	HealthChecks map[string]handlers.HealthCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.Publisher == nil {
		deps.Publisher = events.NewLogPublisher()
	}

	// Create router
	router := gin.New()
	router.MaxMultipartMemory = cfg.UploadMaxBytes

	sessionMiddleware := auth.NewSessionMiddleware(deps.Sessions)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(sessionMiddleware.LoadSession())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Initialize services
	ownerService := service.NewOwnerService(ownerRepo, deps.Publisher, validator, cfg.ResetTokenTTL)
	houseService := service.NewHouseService(houseRepo, deps.Images, validator)
	requestService := service.NewRequestService(requestRepo, houseRepo, deps.Publisher, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, deps.HealthChecks)
	ownerHandler := handlers.NewOwnerHandler(ownerService, deps.Sessions, handlers.OwnerHandlerConfig{
		LoginRedirectURL:     cfg.LoginRedirectURL,
		ResetTokenInResponse: cfg.ResetTokenInResponse,
	})
	houseHandler := handlers.NewHouseHandler(houseService, cfg.UploadMaxBytes)
	requestHandler := handlers.NewRequestHandler(requestService)
	pageHandler := handlers.NewPageHandler(cfg.PublicDir, cfg.ViewsDir)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Pages
	router.GET("/houses", pageHandler.Houses)
	router.GET("/owner-requests", pageHandler.OwnerRequests)
	router.GET("/uploads/:name", houseHandler.ServeImage)

	// Owner accounts
	router.POST("/signup-owner", ownerHandler.Signup)
	router.POST("/login-owner", ownerHandler.Login)
	router.POST("/logout-owner", ownerHandler.Logout)
	router.POST("/forgot-password", ownerHandler.ForgotPassword)
	router.POST("/reset-password", ownerHandler.ResetPassword)

	// Public listing and tenant routes
	router.GET("/api/houses", houseHandler.ListHouses)
	router.POST("/request-house", requestHandler.CreateRequest)

	// Owner-only routes
	owner := router.Group("/", sessionMiddleware.RequireSession())
	{
		owner.POST("/post-house", houseHandler.PostHouse)
		owner.GET("/api/owner-houses", houseHandler.ListOwnerHouses)
		owner.DELETE("/api/owner-houses/:id", houseHandler.DeleteHouse)
		owner.GET("/api/owner-requests", requestHandler.ListOwnerRequests)
	}

	// Everything else is the static frontend
	router.NoRoute(pageHandler.Static)

	return router
}
