package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/poise-dev/poise/internal/config"
	"github.com/poise-dev/poise/internal/middleware"
	"github.com/poise-dev/poise/internal/notify"
	"github.com/poise-dev/poise/internal/service"
	"github.com/poise-dev/poise/internal/storage/sqlite"
	"github.com/poise-dev/poise/internal/web"
	"github.com/poise-dev/poise/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	projects := service.NewProjectService(store)
	people := service.NewPersonService(store)
	hub := notify.NewHub()

	mux := web.NewRouter(projects, people, hub)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	// Wrap with h2c so HTTP/2 works without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
