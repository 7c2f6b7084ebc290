package handlers

import (
	"net/http"

	"echo-backend/internal/models"
)

// Ping is the liveness probe.
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.PingResponse{OK: true})
}
