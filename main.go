// @title           Tropical Wood API
// @version         1.0
// @description     Backend for the Tropical Wood (a division of Roilux) business website: product catalog, lead generation submissions and staff administration.

// @contact.name   Roilux
// @contact.email  roilux.woods@gmail.com

// @host      localhost:8080
// @BasePath  /api
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/routes"
	"github.com/appfrabric/roilux/utils"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
		// Environment variables may be set another way, keep going.
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	if err := ensureAdminUsers(db, cfg); err != nil {
		log.Fatalf("failed to seed staff accounts: %v", err)
	}

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	config.Info("server listening on: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB initializes the database connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate migrates all models (adds new columns and tables only)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.ContactMessage{},
		&models.VirtualTour{},
		&models.Order{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops all tables and migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.Order{},
		&models.VirtualTour{},
		&models.ContactMessage{},
		&models.AdminUser{},
		&models.User{},
	)
	if err != nil {
		return err
	}
	return autoMigrate(db)
}

// ensureAdminUsers seeds the default staff accounts when absent
func ensureAdminUsers(db *gorm.DB, cfg *config.Config) error {
	seeds := []struct {
		username string
		email    string
		password string
		role     models.AdminRole
	}{
		{"admin", "roilux.woods@gmail.com", cfg.DefaultAdminPassword, models.RoleAdmin},
		{"processor1", "processor@roilux.com", cfg.DefaultProcessorPassword, models.RoleProcessor},
	}

	for _, seed := range seeds {
		var count int64
		if err := db.Model(&models.AdminUser{}).Where("username = ?", seed.username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}
		admin := models.AdminUser{
			Username:     seed.username,
			Email:        seed.email,
			PasswordHash: hash,
			Role:         seed.role,
			IsActive:     true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		config.Info("seeded staff account %s (%s)", seed.username, seed.role)
	}
	return nil
}
