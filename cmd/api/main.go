package main

import (
	"net/http"
	"os"
	"time"

	"birds-api/internal/platform/logger"
	"birds-api/internal/router"

	"github.com/joho/godotenv"
)

// @title Birds API
// @version 1.0
// @description API REST de ejemplo: CRUD de aves con contador de likes.
// @BasePath /
func main() {
	// .env opcional para dev; en prod las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
