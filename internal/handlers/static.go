package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"echo-backend/internal/models"
)

// StaticHandler serves the optional frontend bundle. The assets directory is
// discovered once at startup; when it is absent the index route degrades to a
// JSON status object instead of erroring.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// HasAssets reports whether the assets directory exists.
func (h *StaticHandler) HasAssets() bool {
	info, err := os.Stat(h.dir)
	return err == nil && info.IsDir()
}

// Index serves index.html when present, otherwise a JSON status object.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	indexPath := filepath.Join(h.dir, "index.html")
	if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, indexPath)
		return
	}

	writeJSON(w, http.StatusOK, models.StatusResponse{
		Status:  "ok",
		Service: "echo-backend",
	})
}

// FileServer returns a handler for GET /static/*.
func (h *StaticHandler) FileServer() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(h.dir)))
}
