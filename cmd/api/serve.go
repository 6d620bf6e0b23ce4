package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"medvault/internal/config"
	"medvault/internal/database"
	"medvault/internal/database/migration"
	handlers "medvault/internal/http/handler"
	"medvault/internal/http/middleware"
	"medvault/internal/logger"
	"medvault/internal/otel"
	"medvault/internal/repository/postgres"
	"medvault/internal/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the doctors and patients tables if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.New(cfg.Log)

			db, err := database.Connect(cmd.Context(), cfg.Database, log)
			if err != nil {
				log.WithError(err).Error("failed to connect to database")
				return err
			}
			defer db.Close()

			return migration.EnsureMigrated(cmd.Context(), db, log)
		},
	}
}

func runServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(cfg.Log)

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.WithError(err).Warn("tracer shutdown failed")
		}
	}()

	db, err := database.Connect(ctx, cfg.Database, log)
	if err != nil {
		log.WithError(err).Error("failed to connect to database")
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log); err != nil {
			return fmt.Errorf("schema bootstrap: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)

	app, err := newApp(db, log, reg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.WithField("addr", addr).Info("http server listening")
		errCh <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("failed to start server")
		}
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		return err
	}
	return nil
}

// newApp wires repositories, services, middleware and routes onto a fiber app.
func newApp(db *sql.DB, log *logrus.Logger, reg *prometheus.Registry) (*fiber.App, error) {
	doctorSvc := service.NewDoctorService(postgres.NewDoctorPostgres(db), log.WithField("component", "doctor_service"))
	patientSvc := service.NewPatientService(postgres.NewPatientPostgres(db), log.WithField("component", "patient_service"))

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "medvault",
		ErrorHandler: handlers.ErrorHandler(log),
	})

	// Outermost first. Logger resolves handler errors through ErrorHandler,
	// so the middlewares above it observe the final status code.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(log))

	handlers.RegisterRoutes(app, db, doctorSvc, patientSvc, reg)
	return app, nil
}
