package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"
	"finance-ledger/internal/events"
	"finance-ledger/internal/handlers"
	"finance-ledger/internal/middleware"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	publisher := newPublisher(cfg, logger)
	defer publisher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics := services.NewPrometheusMetrics(registry)
	ledgerLogger := services.NewLedgerLogger(logger)

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)

	ledgerService := services.NewLedgerService(transactionRepo, metrics)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, ledgerService, publisher, ledgerLogger, metrics)
	importService := services.NewImportService(transactionRepo, categoryRepo, publisher, ledgerLogger, metrics)

	if err := os.MkdirAll(cfg.Import.UploadDir, 0o750); err != nil {
		return err
	}

	limiter := middleware.NewIPRateLimiter(cfg.Security)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(registry)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	handlers.RegisterRoutes(
		e,
		handlers.NewTransactionHandler(transactionService, ledgerService, importService, cfg.Import),
		handlers.NewHealthCheckHandler(db),
		limiter.Middleware(),
		registry,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting ledger server", "address", cfg.Server.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		limiter.RunCleanup(gctx)
		return nil
	})

	g.Go(func() error {
		handlers.NewUploadSweeper(cfg.Import).Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newPublisher connects to the configured broker. Events are dropped when no
// broker is configured or it cannot be reached at startup.
func newPublisher(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if !cfg.EventsEnabled() {
		logger.Info("Event publishing disabled")
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, cfg.Events.Queue)
	if err != nil {
		logger.Warn("Event broker unavailable, events will be dropped", "error", err)
		return events.NewNoopPublisher()
	}

	logger.Info("Publishing ledger events", "exchange", cfg.Events.Exchange, "queue", cfg.Events.Queue)
	return events.NewBreakerPublisher(publisher, events.DefaultBreakerConfig())
}
