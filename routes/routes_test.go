package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/models"
	"github.com/appfrabric/roilux/services/container"
	"github.com/appfrabric/roilux/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AdminUser{},
		&models.ContactMessage{},
		&models.VirtualTour{},
		&models.Order{},
	))

	cfg := &config.Config{
		SiteBaseURL:     "http://localhost:8080",
		DefaultLanguage: "en",
	}

	r := SetupRouterWithContainer(container.NewServiceContainer(db, cfg, nil))
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := utils.HashPassword("roilux2024")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.AdminUser{
		Username:     "admin",
		Email:        "roilux.woods@gmail.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}).Error)
}

func TestVirtualTourFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/virtual-tour", gin.H{
		"name":          "Jane Smith",
		"email":         "jane@example.com",
		"company":       "Smith Furniture",
		"preferredDate": "2024-01-01",
		"preferredTime": "10:00",
		"message":       "Interested in the veneer line.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["tour_id"])
	assert.NotEmpty(t, body["message"])

	w, body = doJSON(t, r, http.MethodGet, "/api/virtual-tours", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 20, body["limit"])
	assert.EqualValues(t, 1, body["pages"])

	tours := body["tours"].([]interface{})
	require.Len(t, tours, 1)
	tour := tours[0].(map[string]interface{})
	assert.Equal(t, "pending", tour["status"])
	assert.Equal(t, "2024-01-01", tour["preferred_date"])

	t.Run("archive", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPut, "/api/virtual-tours/1/archive", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])

		// Twice is still a success.
		w, _ = doJSON(t, r, http.MethodPut, "/api/virtual-tours/1/archive", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/virtual-tours/1/status", gin.H{"status": "rescheduled"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodDelete, "/api/virtual-tours/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContactEndpoints(t *testing.T) {
	r, db := newTestRouter(t)

	t.Run("missing email rejected", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
			"name":    "Jane",
			"subject": "Hello",
			"message": "Hi",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w, body := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"subject": "Plywood pricing",
		"message": "Please send your price list.",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["message_id"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	w, body = doJSON(t, r, http.MethodGet, "/api/contact-messages?page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])
	assert.EqualValues(t, 10, body["limit"])
	messages := body["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, "unread", messages[0].(map[string]interface{})["status"])
}

func TestOrderEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"name":  "Jane Smith",
		"email": "jane@example.com",
		"products": []gin.H{
			{"product_id": "premium-plywood", "title": "Premium Plywood", "quantity": 100},
		},
		"total_amount": "12500.00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["order_id"])
	orderNumber, _ := body["order_number"].(string)
	assert.Regexp(t, `^TW-\d{8}-[0-9A-F]{8}$`, orderNumber)

	t.Run("empty product list rejected", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
			"name":     "Jane",
			"email":    "jane@example.com",
			"products": []gin.H{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w, body = doJSON(t, r, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, "inquiry", orders[0].(map[string]interface{})["status"])
}

func TestAuthEndpoints(t *testing.T) {
	r, db := newTestRouter(t)
	seedAdmin(t, db)

	t.Run("login", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"username": "admin",
			"password": "roilux2024",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "admin", user["username"])
		assert.Equal(t, "admin", user["role"])
		assert.NotContains(t, user, "password_hash")
	})

	t.Run("wrong password", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"username": "admin",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("register duplicate", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
			"username": "admin",
			"email":    "other@roilux.com",
			"password": "longenough",
			"role":     "processor",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("password reset with unknown token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/password-reset/validate", gin.H{
			"token": "bogus",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list users", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, "admin", users[0]["username"])
	})
}

func TestCatalogAndTranslations(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := body["categories"].([]interface{})
	assert.Len(t, categories, 5)

	w, body = doJSON(t, r, http.MethodGet, "/api/products/plywood", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["products"])

	t.Run("unknown category", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/products/marble", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	w, body = doJSON(t, r, http.MethodGet, "/api/translations/fr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Accueil", body["nav_home"])

	t.Run("unsupported language", func(t *testing.T) {
		w, body := doJSON(t, r, http.MethodGet, "/api/translations/es", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["supported"], 2)
	})

	w, body = doJSON(t, r, http.MethodGet, "/api/company-info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body)
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestListingPageCount(t *testing.T) {
	r, db := newTestRouter(t)

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&models.ContactMessage{
			Name:     "Visitor",
			Email:    fmt.Sprintf("v%d@example.com", i),
			Subject:  "Hello",
			Message:  "Hi",
			Language: "en",
			Status:   models.ContactStatusUnread,
		}).Error)
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/contact-messages?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 25, body["total"])
	assert.EqualValues(t, 2, body["page"])
	assert.EqualValues(t, 2, body["pages"])
	assert.Len(t, body["messages"], 5)
}
