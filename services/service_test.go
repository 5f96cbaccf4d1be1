package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
)

// newTestDB opens an in-memory database and migrates every model. The
// connection pool is pinned to one connection so all queries see the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.ContactMessage{},
		&models.VirtualTour{},
		&models.Order{},
	)
	require.NoError(t, err)

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		SiteBaseURL:     "http://localhost:8080",
		DefaultLanguage: "en",
	}
}

// mailRecorder captures outbound password reset mail instead of sending it.
type mailRecorder struct {
	to    []string
	links []string
}

func (m *mailRecorder) SendPasswordReset(to, resetLink, lang string) error {
	m.to = append(m.to, to)
	m.links = append(m.links, resetLink)
	return nil
}
