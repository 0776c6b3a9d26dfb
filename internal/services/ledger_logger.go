package services

import (
	"context"
	"log/slog"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID attaches a correlation id that ledger log records carry
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// CorrelationIDFromContext returns the correlation id or an empty string
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerLogger{
		logger: logger,
	}
}

func (ll *LedgerLogger) LogTransactionCreated(ctx context.Context, transaction *models.Transaction, categoryCreated bool) {
	ll.logger.InfoContext(ctx, "transaction created",
		slog.String("event_type", "transaction_created"),
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("type", transaction.Type),
		slog.Int64("value", transaction.Value),
		slog.String("category_id", transaction.CategoryID.String()),
		slog.Bool("category_created", categoryCreated),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogInsufficientFunds(ctx context.Context, value, total int64) {
	ll.logger.WarnContext(ctx, "outcome exceeds balance",
		slog.String("event_type", "insufficient_funds"),
		slog.Int64("value", value),
		slog.Int64("balance_total", total),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogImportPhase(ctx context.Context, importID uuid.UUID, phase ImportPhase) {
	ll.logger.DebugContext(ctx, "import phase",
		slog.String("event_type", "import_phase"),
		slog.String("import_id", importID.String()),
		slog.String("phase", string(phase)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogImportRowsDecoded(ctx context.Context, importID uuid.UUID, accepted, skipped int) {
	ll.logger.InfoContext(ctx, "import rows decoded",
		slog.String("event_type", "import_rows_decoded"),
		slog.String("import_id", importID.String()),
		slog.Int("accepted", accepted),
		slog.Int("skipped", skipped),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogCategoriesReconciled(ctx context.Context, importID uuid.UUID, existing, created int) {
	ll.logger.InfoContext(ctx, "categories reconciled",
		slog.String("event_type", "categories_reconciled"),
		slog.String("import_id", importID.String()),
		slog.Int("existing", existing),
		slog.Int("created", created),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogImportCompleted(ctx context.Context, importID uuid.UUID, transactions int, durationMs int64) {
	ll.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("import_id", importID.String()),
		slog.Int("transactions", transactions),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogImportFailed(ctx context.Context, importID uuid.UUID, phase ImportPhase, errorMsg string) {
	ll.logger.ErrorContext(ctx, "import failed",
		slog.String("event_type", "import_failed"),
		slog.String("import_id", importID.String()),
		slog.String("phase", string(phase)),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogSourceCleanupFailed(ctx context.Context, importID uuid.UUID, filePath, errorMsg string) {
	ll.logger.WarnContext(ctx, "import source cleanup failed",
		slog.String("event_type", "source_cleanup_failed"),
		slog.String("import_id", importID.String()),
		slog.String("file_path", filePath),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (ll *LedgerLogger) LogEventPublishFailed(ctx context.Context, eventType, errorMsg string) {
	ll.logger.WarnContext(ctx, "event publish failed",
		slog.String("event_type", "event_publish_failed"),
		slog.String("ledger_event", eventType),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}
