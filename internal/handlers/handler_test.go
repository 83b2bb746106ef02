package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"shortly/internal/config"
	"shortly/internal/models"
	"shortly/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.URL{}, &models.Session{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	shortener := services.NewShortenerService(db)
	sessionSvc := services.NewSessionService(db)
	qr := services.NewQRService()

	// No redis in tests; the cache path is nil-safe.
	h := NewHandler(cfg, logger, db, nil, shortener, sessionSvc, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "", "")
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the API and returns the session
// cookies from the login response.
func registerAndLogin(t *testing.T, r *gin.Engine, email string) []*http.Cookie {
	t.Helper()

	w := doJSON(r, "POST", "/api/register", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("register failed with %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "POST", "/api/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", w.Code, w.Body.String())
	}

	return w.Result().Cookies()
}
