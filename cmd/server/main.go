package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/adbstack/agent-tools/internal/config"
	"github.com/adbstack/agent-tools/pkg/database"
	"github.com/adbstack/agent-tools/pkg/logging"
	"github.com/adbstack/agent-tools/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	modules, err := NewModules(cfg, db, logger)
	if err != nil {
		logger.Error("failed to initialize modules", "error", err)
		os.Exit(1)
	}

	app := &Application{
		config:  cfg,
		logger:  logger,
		modules: modules,
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr)

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	err = <-shutdownError
	if err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// Application holds the fully wired service.
type Application struct {
	config  *config.Config
	logger  *slog.Logger
	modules *Modules
}

func (app *Application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	app.modules.Mount(mux)

	handler := middleware.TrimSlash()(mux)
	handler = app.maxBody(handler)
	handler = app.enableCORS(handler)
	return handler
}
