package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "github.com/aussiebroadwan/healthinfo/internal/healthinfo/http"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/service"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite"
	"github.com/aussiebroadwan/healthinfo/pkg/httpx"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	metricsNamespace = "healthinfo"
)

// Application encapsulates the health information service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      *sqlite.Store
	metrics *httpx.Metrics

	programService    *service.ProgramService
	clientService     *service.ClientService
	enrollmentService *service.EnrollmentService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg and wires every dependency. The database is opened and
// migrated before New returns.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "healthinfo",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.UsingDefaultCredentials() {
		app.logger.Warn("using built-in API credentials; set HEALTH_API_PASSWORD or HEALTH_API_PASSWORD_HASH",
			"username", cfg.Username)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMetrics()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("health information service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down health information service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("health information service stopped")
	return nil
}

// initDatabase opens the SQLite file and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}
	app.db = db

	app.logger.Info("database ready", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initMetrics() {
	if !app.cfg.MetricsEnabled {
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(app.db.DB(), metricsNamespace),
	)
	app.metrics = httpx.NewMetrics(registry, metricsNamespace)
}

func (app *Application) initServices() {
	app.programService = &service.ProgramService{Store: app.db}
	app.clientService = &service.ClientService{Store: app.db}
	app.enrollmentService = &service.EnrollmentService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.cfg.Credentials(),
		app.metrics,
		app.logger,
	)

	router.ProgramService = app.programService
	router.ClientService = app.clientService
	router.EnrollmentService = app.enrollmentService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
