package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfmate/catalog/internal/auth"
	"github.com/shelfmate/catalog/internal/middleware"
	"github.com/shelfmate/catalog/internal/repository"
)

const testSecret = "handler-test-secret"

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(testSecret, time.Minute)
}

// setupTestRouter wires every handler against real gorm repositories on the
// given database, the same way cmd/server does.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	tokens := testTokenManager()
	requireAuth := middleware.RequireAuth(tokens)

	api := r.Group("")
	NewBookHandler(repository.NewGormBookRepository(db), repository.NewGormRatingRepository(db)).
		RegisterRoutes(api, requireAuth)
	NewAuthorHandler(repository.NewGormAuthorRepository(db)).RegisterRoutes(api)
	NewGenreHandler(repository.NewGormGenreRepository(db)).RegisterRoutes(api)
	NewUserHandler(repository.NewGormUserRepository(db), tokens).RegisterRoutes(api, requireAuth)
	NewStatsHandler(repository.NewGormStatsRepository(db)).RegisterRoutes(api)

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}
