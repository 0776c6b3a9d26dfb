package main

import (
	"fmt"
	"log/slog"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"
	"finance-ledger/internal/events"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

// ledger bundles the services a single CLI invocation needs
type ledger struct {
	db        *database.DB
	publisher events.Publisher
	balances  services.LedgerServiceInterface
	importer  services.ImportServiceInterface
}

func openLedger(cfg *config.Config) (*ledger, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	return newLedger(db, openPublisher(cfg)), nil
}

func newLedger(db *database.DB, publisher events.Publisher) *ledger {
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	logger := services.NewLedgerLogger(slog.Default())

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)

	return &ledger{
		db:        db,
		publisher: publisher,
		balances:  services.NewLedgerService(transactionRepo, metrics),
		importer:  services.NewImportService(transactionRepo, categoryRepo, publisher, logger, metrics),
	}
}

func openPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		return events.NewNoopPublisher()
	}

	publisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, cfg.Events.Queue)
	if err != nil {
		slog.Warn("Event broker unavailable, events will be dropped", "error", err)
		return events.NewNoopPublisher()
	}
	return publisher
}

func (l *ledger) Close() error {
	if err := l.publisher.Close(); err != nil {
		slog.Warn("Failed to close event publisher", "error", err)
	}
	if err := l.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
