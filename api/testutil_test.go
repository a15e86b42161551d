package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitford/portfolio-backend/auth"
	"github.com/mwhitford/portfolio-backend/database"
)

const (
	testSecret   = "test-signing-secret"
	testUsername = "admin"
	testPassword = "admin123"
)

func newTestConfig(t *testing.T) map[string]string {
	t.Helper()

	return map[string]string{
		"JWT_SECRET":     testSecret,
		"ADMIN_USERNAME": testUsername,
		"ADMIN_PASSWORD": testPassword,
		"UPLOAD_DIR":     filepath.Join(t.TempDir(), "uploads"),
		"PUBLIC_DIR":     t.TempDir(),
	}
}

func newTestRouter(t *testing.T) (*chi.Mux, database.Database, map[string]string) {
	t.Helper()

	gormDB, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	db := database.New(gormDB)
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	c := newTestConfig(t)
	router, err := newRouter(db, withConfig(c))
	if err != nil {
		t.Fatalf("failed to build router: %v", err)
	}

	return router, db, c
}

func adminToken(t *testing.T) string {
	t.Helper()

	token, err := auth.GenerateToken(testSecret, testUsername, auth.TokenTTL)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonData)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response body %q: %v", recorder.Body.String(), err)
	}
}
