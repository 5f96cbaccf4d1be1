package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/services"
)

// ServiceContainer wires every service with its dependencies
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Infrastructure services
	redisService services.InterfaceRedisService
	tokenStore   services.InterfaceTokenStore
	mailService  services.InterfaceMailService

	// Business services
	adminService   services.InterfaceAdminService
	contactService services.InterfaceContactService
	tourService    services.InterfaceTourService
	orderService   services.InterfaceOrderService
	catalogService services.InterfaceCatalogService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Probe the Redis connection; the container falls back to the in-memory
	// token store when Redis is unreachable.
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis connection test failed: %v, falling back to in-memory token store", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Infrastructure services
	c.mailService = services.NewMailService(c.config)
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config)
		c.tokenStore = services.NewRedisTokenStore(c.redisService)
	} else {
		c.tokenStore = services.NewMemoryTokenStore()
	}

	// Business services
	c.adminService = services.NewAdminService(c.db, c.config, c.tokenStore, c.mailService)
	c.contactService = services.NewContactService(c.db, c.config)
	c.tourService = services.NewTourService(c.db, c.config)
	c.orderService = services.NewOrderService(c.db, c.config)
	c.catalogService = services.NewCatalogService()
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redisService
	case "tokens":
		return c.tokenStore
	case "mail":
		return c.mailService
	case "admin":
		return c.adminService
	case "contact":
		return c.contactService
	case "tour":
		return c.tourService
	case "order":
		return c.orderService
	case "catalog":
		return c.catalogService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
