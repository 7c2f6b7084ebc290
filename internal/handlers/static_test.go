package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"echo-backend/internal/handlers"
	"echo-backend/internal/models"
)

func TestIndex_NoAssets(t *testing.T) {
	h := handlers.NewStaticHandler(filepath.Join(t.TempDir(), "nope"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 even without assets, got %d", rr.Code)
	}

	var resp models.StatusResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
}

func TestIndex_ServesIndexHTML(t *testing.T) {
	dir := t.TempDir()
	html := "<!doctype html><title>Echo</title>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	h := handlers.NewStaticHandler(dir)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Index(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<title>Echo</title>") {
		t.Errorf("Expected index.html body, got %q", rr.Body.String())
	}
}

func TestHasAssets(t *testing.T) {
	dir := t.TempDir()

	if !handlers.NewStaticHandler(dir).HasAssets() {
		t.Errorf("Expected HasAssets true for existing dir")
	}
	if handlers.NewStaticHandler(filepath.Join(dir, "missing")).HasAssets() {
		t.Errorf("Expected HasAssets false for missing dir")
	}
}

func TestFileServer(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('hi')"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := handlers.NewStaticHandler(dir)

	req := httptest.NewRequest(http.MethodGet, "/static/app.js", nil)
	rr := httptest.NewRecorder()
	h.FileServer().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "console.log") {
		t.Errorf("Expected asset bytes, got %q", rr.Body.String())
	}
}
