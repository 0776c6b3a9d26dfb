package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"finance-ledger/internal/events"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMalformedSource = errors.New("import source is malformed")
	ErrInvalidValue    = errors.New("import value must be a non-negative integer")
	ErrInvalidType     = errors.New("import type must be income or outcome")
)

const sourceImport = "import"

// ImportPhase is the stage an import has reached
type ImportPhase string

const (
	ImportPhaseReading     ImportPhase = "reading"
	ImportPhaseReconciling ImportPhase = "reconciling"
	ImportPhaseWriting     ImportPhase = "writing"
	ImportPhaseCleanup     ImportPhase = "cleanup"
	ImportPhaseDone        ImportPhase = "done"
	ImportPhaseFailed      ImportPhase = "failed"
)

// ImportResult holds the persisted transactions in source order
type ImportResult struct {
	Transactions      []*models.Transaction
	CategoriesCreated int
	RowsSkipped       int
}

// pendingRow is a decoded row waiting for its category
type pendingRow struct {
	title           string
	transactionType string
	value           int64
	category        string
}

type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	publisher       events.Publisher
	logger          LedgerLoggerInterface
	metrics         MetricsRecorderInterface
	removeFile      func(name string) error
}

func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	publisher events.Publisher,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &importService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		publisher:       publisher,
		logger:          logger,
		metrics:         metrics,
		removeFile:      os.Remove,
	}
}

// ImportTransactions reads every row of the CSV file, creates the categories
// it names that do not yet exist with one write, stores all transactions with
// a second write and deletes the file. The balance is not checked.
// On any failure before persistence the file is left in place.
func (s *importService) ImportTransactions(ctx context.Context, filePath string) (*ImportResult, error) {
	importID := uuid.New()
	start := time.Now()

	result, phase, err := s.runImport(ctx, importID, filePath)
	s.metrics.RecordProcessingTime("import.duration", time.Since(start))
	if err != nil {
		s.logger.LogImportFailed(ctx, importID, phase, err.Error())
		s.logger.LogImportPhase(ctx, importID, ImportPhaseFailed)
		s.metrics.IncrementCounter("import.finished", map[string]string{"status": "failed"})
		return nil, err
	}

	s.logger.LogImportPhase(ctx, importID, ImportPhaseDone)
	s.logger.LogImportCompleted(ctx, importID, len(result.Transactions), time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("import.finished", map[string]string{"status": "success"})

	event := events.NewTransactionsImportedEvent(len(result.Transactions), result.CategoriesCreated)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.LogEventPublishFailed(ctx, events.EventTransactionsImported, err.Error())
	}

	return result, nil
}

func (s *importService) runImport(ctx context.Context, importID uuid.UUID, filePath string) (*ImportResult, ImportPhase, error) {
	s.logger.LogImportPhase(ctx, importID, ImportPhaseReading)
	pending, skipped, err := s.readRows(ctx, filePath)
	if err != nil {
		return nil, ImportPhaseReading, err
	}
	s.logger.LogImportRowsDecoded(ctx, importID, len(pending), skipped)
	s.metrics.AddCounter("import.rows", float64(len(pending)), map[string]string{"outcome": "accepted"})
	s.metrics.AddCounter("import.rows", float64(skipped), map[string]string{"outcome": "skipped"})

	s.logger.LogImportPhase(ctx, importID, ImportPhaseReconciling)
	pool, created, err := s.reconcileCategories(ctx, pending)
	if err != nil {
		return nil, ImportPhaseReconciling, err
	}
	s.logger.LogCategoriesReconciled(ctx, importID, len(pool)-created, created)
	s.metrics.AddCounter("category.created", float64(created), map[string]string{"source": sourceImport})

	s.logger.LogImportPhase(ctx, importID, ImportPhaseWriting)
	transactions := make([]*models.Transaction, 0, len(pending))
	for _, row := range pending {
		transactions = append(transactions, models.NewTransaction(row.title, row.transactionType, row.value, pool[row.category]))
	}
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, ImportPhaseWriting, fmt.Errorf("failed to create transactions: %w", err)
	}
	for _, transaction := range transactions {
		s.metrics.IncrementCounter("transaction.created", map[string]string{
			"type":   transaction.Type,
			"source": sourceImport,
		})
	}

	s.logger.LogImportPhase(ctx, importID, ImportPhaseCleanup)
	if err := s.removeFile(filePath); err != nil {
		// Transactions are already committed, so the import still succeeds
		s.logger.LogSourceCleanupFailed(ctx, importID, filePath, err.Error())
	}

	return &ImportResult{
		Transactions:      transactions,
		CategoriesCreated: created,
		RowsSkipped:       skipped,
	}, ImportPhaseDone, nil
}

// readRows drains the whole file before returning so no write starts on a partial read
func (s *importService) readRows(ctx context.Context, filePath string) ([]pendingRow, int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open import source: %w", err)
	}
	defer file.Close()

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	rows, errs := streamCSVRows(streamCtx, file)

	var (
		pending  []pendingRow
		skipped  int
		rowError error
	)
	for row := range rows {
		if rowError != nil {
			continue
		}
		if row.Title == "" || row.Type == "" || row.Value == "" {
			skipped++
			continue
		}

		decoded, err := decodeRow(row)
		if err != nil {
			rowError = err
			cancel()
			continue
		}
		pending = append(pending, decoded)
	}

	if rowError != nil {
		return nil, 0, rowError
	}
	if err := <-errs; err != nil {
		return nil, 0, err
	}

	return pending, skipped, nil
}

func decodeRow(row csvRow) (pendingRow, error) {
	if !models.IsValidTransactionType(row.Type) {
		return pendingRow{}, fmt.Errorf("%w: line %d: %q", ErrInvalidType, row.Line, row.Type)
	}

	value, err := parseValue(row.Value)
	if err != nil {
		return pendingRow{}, fmt.Errorf("%w: line %d: %q", err, row.Line, row.Value)
	}

	return pendingRow{
		title:           row.Title,
		transactionType: row.Type,
		value:           value,
		category:        row.Category,
	}, nil
}

func parseValue(raw string) (int64, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, ErrInvalidValue
	}
	if value.IsNegative() || !value.IsInteger() {
		return 0, ErrInvalidValue
	}
	if value.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, ErrInvalidValue
	}
	return value.IntPart(), nil
}

// reconcileCategories looks up every referenced title with one read and
// creates the missing ones with one write. The returned pool maps each
// title to its category; created counts the new rows.
func (s *importService) reconcileCategories(ctx context.Context, pending []pendingRow) (map[string]*models.Category, int, error) {
	titles := make([]string, 0, len(pending))
	seen := make(map[string]struct{}, len(pending))
	for _, row := range pending {
		if _, ok := seen[row.category]; ok {
			continue
		}
		seen[row.category] = struct{}{}
		titles = append(titles, row.category)
	}

	existing, err := s.categoryRepo.FindByTitles(ctx, titles)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find categories: %w", err)
	}

	pool := make(map[string]*models.Category, len(titles))
	for i := range existing {
		pool[existing[i].Title] = &existing[i]
	}

	var missing []*models.Category
	for _, title := range titles {
		if _, ok := pool[title]; ok {
			continue
		}
		missing = append(missing, models.NewCategory(title))
	}

	if err := s.categoryRepo.CreateBatch(ctx, missing); err != nil {
		return nil, 0, fmt.Errorf("failed to create categories: %w", err)
	}
	for _, category := range missing {
		pool[category.Title] = category
	}

	return pool, len(missing), nil
}
