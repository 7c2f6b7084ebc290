package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"echo-backend/internal/config"
	"echo-backend/internal/handlers"
	"echo-backend/internal/logger"
	"echo-backend/internal/router"
	"echo-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("env", cfg.Env).Msg("starting echo-backend")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService := services.NewGeminiService(cfg)
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; /chat will fail until it is provided")
	}
	log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client initialized")

	// ──── Step 3: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(geminiService)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)
	if staticHandler.HasAssets() {
		log.Info().Str("dir", cfg.StaticDir).Msg("serving frontend assets")
	} else {
		log.Info().Str("dir", cfg.StaticDir).Msg("no frontend assets found, index serves JSON status")
	}

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, staticHandler, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// The response cannot start until the upstream call finishes, so the
		// write timeout must outlive the 60s generation budget.
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info().Str("addr", server.Addr).Msg("echo-backend ready")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
