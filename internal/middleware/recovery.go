package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"echo-backend/internal/models"
)

// Recovery converts panics into 500 responses.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("error", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", r.Header.Get("X-Request-ID")).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					Error: models.APIError{
						Code:      "INTERNAL_ERROR",
						Message:   "Internal Server Error",
						RequestID: r.Header.Get("X-Request-ID"),
					},
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
