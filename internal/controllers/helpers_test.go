package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"freight_tracker/internal/config"
	"freight_tracker/internal/models"
	"freight_tracker/internal/routes"
	"freight_tracker/internal/weather"
)

type staticWeather struct {
	snap weather.Snapshot
}

func (s staticWeather) Fetch(ctx context.Context, location string) (weather.Snapshot, error) {
	return s.snap, nil
}

type downWeather struct{}

func (downWeather) Fetch(ctx context.Context, location string) (weather.Snapshot, error) {
	return weather.Snapshot{}, errors.New("connection refused")
}

// newTestRouter builds the full API router over a private in-memory
// database. cache=shared keeps the database alive across the pool's
// connections.
func newTestRouter(t *testing.T, provider weather.Provider) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return routes.SetupRouter(db, provider), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// registerDriver creates an account through the API and returns a session
// token plus the persisted user id.
func registerDriver(t *testing.T, r *gin.Engine, db *gorm.DB, login string) (string, uint) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"login": login, "password": "secret123", "role": models.RoleDriver,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: %d %s", login, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"login": login, "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", login, w.Code, w.Body.String())
	}
	token, _ := decodeBody(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response", login)
	}

	var user models.User
	if err := db.Where("login = ?", login).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", login, err)
	}
	return token, user.ID
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create fixture %T: %v", value, err)
	}
}
