package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/controllers"
	_ "github.com/appfrabric/roilux/docs"
	"github.com/appfrabric/roilux/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	var redisClient *redis.Client
	if cfg.RedisEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// SetupRouterWithContainer wires the routes against an existing container.
// Used by tests to inject their own database and token store.
func SetupRouterWithContainer(serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.New()
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// Liveness endpoints
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes registers the website-facing routes
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Static catalog
	api.GET("/products", controllers.HandleCatalogFunc(container, "getProducts"))
	api.GET("/products/:category", controllers.HandleCatalogFunc(container, "getProductCategory"))
	api.GET("/company-info", controllers.HandleCatalogFunc(container, "getCompanyInfo"))
	api.GET("/sample-request", controllers.HandleCatalogFunc(container, "getSampleRequest"))

	// Translations
	api.GET("/translations/:lang", controllers.HandleTranslationFunc(container, "getTranslations"))

	// Lead generation submissions
	api.POST("/contact", controllers.HandleContactFunc(container, "submitContact"))
	api.POST("/virtual-tour", controllers.HandleTourFunc(container, "submitTour"))
	api.POST("/orders", controllers.HandleOrderFunc(container, "submitOrder"))
}

// registerAdminRoutes registers the staff-facing routes
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Authentication
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/auth/register", controllers.HandleAuthFunc(container, "register"))
	api.POST("/auth/change-password", controllers.HandleAuthFunc(container, "changePassword"))
	api.GET("/auth/users", controllers.HandleAuthFunc(container, "getAdminUsers"))
	api.POST("/auth/password-reset/request", controllers.HandleAuthFunc(container, "requestPasswordReset"))
	api.POST("/auth/password-reset/validate", controllers.HandleAuthFunc(container, "validateResetToken"))
	api.POST("/auth/password-reset/confirm", controllers.HandleAuthFunc(container, "confirmPasswordReset"))

	// Contact messages
	api.GET("/contact-messages", controllers.HandleContactFunc(container, "getContactMessages"))
	api.PUT("/contact-messages/:id/archive", controllers.HandleContactFunc(container, "archiveContactMessage"))
	api.PUT("/contact-messages/:id/status", controllers.HandleContactFunc(container, "updateContactMessageStatus"))
	api.DELETE("/contact-messages/:id", controllers.HandleContactFunc(container, "deleteContactMessage"))

	// Virtual tours
	api.GET("/virtual-tours", controllers.HandleTourFunc(container, "getTours"))
	api.PUT("/virtual-tours/:id/archive", controllers.HandleTourFunc(container, "archiveTour"))
	api.PUT("/virtual-tours/:id/status", controllers.HandleTourFunc(container, "updateTourStatus"))
	api.DELETE("/virtual-tours/:id", controllers.HandleTourFunc(container, "deleteTour"))

	// Orders
	api.GET("/orders", controllers.HandleOrderFunc(container, "getOrders"))
	api.PUT("/orders/:id/archive", controllers.HandleOrderFunc(container, "archiveOrder"))
	api.PUT("/orders/:id/status", controllers.HandleOrderFunc(container, "updateOrderStatus"))
	api.DELETE("/orders/:id", controllers.HandleOrderFunc(container, "deleteOrder"))
}
