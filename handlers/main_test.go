package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"qr-order-api/config"
	"qr-order-api/middleware"
	"qr-order-api/models"
	"qr-order-api/routes"
)

// setupRouter wires the real routes against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One in-memory database per test: keep the pool on a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Store{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	))
	config.DB = db
	config.JWTSecret = []byte("test-secret")

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createStore(t *testing.T, email string) *models.Store {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	store := models.Store{
		Name:         "Test Kitchen",
		Email:        email,
		PasswordHash: string(hash),
		QRSlug:       uuid.NewString(),
		HasTables:    true,
		TableCount:   10,
	}
	require.NoError(t, config.DB.Create(&store).Error)
	return &store
}

func storeToken(t *testing.T, store *models.Store) string {
	t.Helper()
	token, err := middleware.GenerateToken(store.ID, store.Email, models.RoleStore)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken(1, "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
