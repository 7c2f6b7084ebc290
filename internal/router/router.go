package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"echo-backend/internal/handlers"
	"echo-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	staticHandler *handlers.StaticHandler,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(allowedOrigin))

	// Liveness probe
	r.Get("/ping", handlers.Ping)

	// Frontend
	r.Get("/", staticHandler.Index)
	if staticHandler.HasAssets() {
		r.Handle("/static/*", staticHandler.FileServer())
	}

	// Primary endpoint
	r.Post("/chat", chatHandler.Chat)

	return r
}
