package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeStaticFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func getPath(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestStaticServesExistingFiles(t *testing.T) {
	router, _, cfg := newTestRouter(t)
	writeStaticFile(t, cfg["PUBLIC_DIR"], "styles.css", "body { margin: 0 }")

	recorder := getPath(t, router, "/styles.css")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if recorder.Body.String() != "body { margin: 0 }" {
		t.Fatalf("expected the file contents, got %q", recorder.Body.String())
	}
}

func TestUnknownRoutesFallBackToIndex(t *testing.T) {
	router, _, cfg := newTestRouter(t)
	writeStaticFile(t, cfg["PUBLIC_DIR"], "index.html", "<html>portfolio</html>")

	for _, path := range []string{"/", "/projects/web", "/no/such/page"} {
		recorder := getPath(t, router, path)

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, recorder.Code)
		}
		if recorder.Body.String() != "<html>portfolio</html>" {
			t.Fatalf("expected index.html for %s, got %q", path, recorder.Body.String())
		}
	}
}

func TestAdminPathServesAdminShell(t *testing.T) {
	router, _, cfg := newTestRouter(t)
	writeStaticFile(t, cfg["PUBLIC_DIR"], "admin.html", "<html>admin</html>")

	recorder := getPath(t, router, "/admin")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if recorder.Body.String() != "<html>admin</html>" {
		t.Fatalf("expected admin.html, got %q", recorder.Body.String())
	}
}

func TestUploadedFilesAreServed(t *testing.T) {
	router, _, cfg := newTestRouter(t)

	if err := os.MkdirAll(cfg["UPLOAD_DIR"], 0o755); err != nil {
		t.Fatalf("failed to create upload dir: %v", err)
	}
	writeStaticFile(t, cfg["UPLOAD_DIR"], "123_photo_lg.png", "fake png bytes")

	recorder := getPath(t, router, "/uploads/123_photo_lg.png")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if recorder.Body.String() != "fake png bytes" {
		t.Fatalf("expected the uploaded file contents, got %q", recorder.Body.String())
	}
}
