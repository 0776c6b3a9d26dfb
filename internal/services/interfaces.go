package services

import (
	"context"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface derives the ledger balance from stored transactions
type LedgerServiceInterface interface {
	GetBalance(ctx context.Context) (*models.Balance, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, *models.Balance, error)
}

// TransactionServiceInterface records single transactions behind the balance guard
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)
}

// ImportServiceInterface bulk-loads transactions from a CSV file on disk
type ImportServiceInterface interface {
	ImportTransactions(ctx context.Context, filePath string) (*ImportResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerLoggerInterface emits structured audit records for ledger changes
type LedgerLoggerInterface interface {
	LogTransactionCreated(ctx context.Context, transaction *models.Transaction, categoryCreated bool)
	LogInsufficientFunds(ctx context.Context, value, total int64)
	LogImportPhase(ctx context.Context, importID uuid.UUID, phase ImportPhase)
	LogImportRowsDecoded(ctx context.Context, importID uuid.UUID, accepted, skipped int)
	LogCategoriesReconciled(ctx context.Context, importID uuid.UUID, existing, created int)
	LogImportCompleted(ctx context.Context, importID uuid.UUID, transactions int, durationMs int64)
	LogImportFailed(ctx context.Context, importID uuid.UUID, phase ImportPhase, errorMsg string)
	LogSourceCleanupFailed(ctx context.Context, importID uuid.UUID, filePath, errorMsg string)
	LogEventPublishFailed(ctx context.Context, eventType, errorMsg string)
}
