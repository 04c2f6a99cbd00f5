package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jwebster45206/echoes-of-ruin/internal/config"
	"github.com/jwebster45206/echoes-of-ruin/internal/handlers"
	"github.com/jwebster45206/echoes-of-ruin/internal/logger"
	"github.com/jwebster45206/echoes-of-ruin/internal/middleware"
	"github.com/jwebster45206/echoes-of-ruin/internal/services"
	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Echoes of Ruin API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"model_name", cfg.ModelName,
		"gore_enabled", cfg.EnableGore)

	if len(cfg.GeminiAPIKeys) == 0 {
		log.Error("At least one Gemini API key is required")
		os.Exit(1)
	}
	narrator := services.NewGeminiService(cfg.GeminiAPIKeys, cfg.ModelName, log)
	log.Info("Narrator service initialized", "keys", len(cfg.GeminiAPIKeys))

	store, err := storage.NewRedisStorage(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to configure storage", "error", err)
		os.Exit(1)
	}
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage connection established successfully")

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	gameHandler := handlers.NewGameHandler(store, narrator, log, cfg.EnableGore)
	mux.Handle("/v1/game", gameHandler)

	turnHandler := handlers.NewTurnHandler(store, narrator, log, cfg.EnableGore)
	actionHandler := handlers.NewActionHandler(store, log)

	// Subresource routes share the /v1/game/ prefix; dispatch on suffix.
	mux.Handle("/v1/game/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/turn"):
			turnHandler.ServeHTTP(w, r)
		case strings.HasSuffix(r.URL.Path, "/action"):
			actionHandler.ServeHTTP(w, r)
		default:
			gameHandler.ServeHTTP(w, r)
		}
	}))

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// WriteTimeout is deliberately absent: narrator turns can take
		// well over a minute on slow models.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
