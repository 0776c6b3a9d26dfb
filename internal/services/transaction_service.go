package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-ledger/internal/events"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"
)

var (
	ErrInsufficientFunds = errors.New("outcome value exceeds current balance")
)

const sourceAPI = "api"

// CreateTransactionInput carries a single transaction request.
// Category is a category title, created on first use.
type CreateTransactionInput struct {
	Title    string
	Value    int64
	Type     string
	Category string
}

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	ledgerService   LedgerServiceInterface
	publisher       events.Publisher
	logger          LedgerLoggerInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	ledgerService LedgerServiceInterface,
	publisher events.Publisher,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		ledgerService:   ledgerService,
		publisher:       publisher,
		logger:          logger,
		metrics:         metrics,
	}
}

// CreateTransaction rejects an outcome larger than the current balance total,
// finds or creates the category by exact title and persists the transaction.
// Nothing is written when the balance guard fails.
func (s *transactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, models.ErrTitleRequired
	}
	if !models.IsValidTransactionType(input.Type) {
		return nil, models.ErrInvalidTransactionType
	}
	if input.Value < 0 {
		return nil, models.ErrNegativeValue
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, models.ErrCategoryRequired
	}

	balance, err := s.ledgerService.GetBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	if input.Type == models.TransactionTypeOutcome && !balance.CanCover(input.Value) {
		s.logger.LogInsufficientFunds(ctx, input.Value, balance.Total)
		s.metrics.IncrementCounter("transaction.insufficient_funds", nil)
		return nil, ErrInsufficientFunds
	}

	// Not atomic with the balance read; concurrent creators may both pass the guard
	category, categoryCreated, err := s.findOrCreateCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	transaction := models.NewTransaction(input.Title, input.Type, input.Value, category)
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	s.logger.LogTransactionCreated(ctx, transaction, categoryCreated)
	s.metrics.IncrementCounter("transaction.created", map[string]string{
		"type":   transaction.Type,
		"source": sourceAPI,
	})
	if categoryCreated {
		s.metrics.IncrementCounter("category.created", map[string]string{"source": sourceAPI})
	}

	if err := s.publisher.Publish(ctx, events.NewTransactionCreatedEvent(transaction)); err != nil {
		s.logger.LogEventPublishFailed(ctx, events.EventTransactionCreated, err.Error())
	}

	return transaction, nil
}

func (s *transactionService) findOrCreateCategory(ctx context.Context, title string) (*models.Category, bool, error) {
	category, err := s.categoryRepo.FindByTitle(ctx, title)
	if err == nil {
		return category, false, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, false, fmt.Errorf("failed to find category: %w", err)
	}

	category = models.NewCategory(title)
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, false, fmt.Errorf("failed to persist category: %w", err)
	}

	return category, true, nil
}
