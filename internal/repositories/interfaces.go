package repositories

import (
	"context"

	"finance-ledger/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction storage operations
type TransactionRepositoryInterface interface {
	// FindAll returns every stored transaction without filtering or pagination
	FindAll(ctx context.Context) ([]models.Transaction, error)
	// List returns every transaction with its category, oldest first
	List(ctx context.Context) ([]models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	// CreateBatch persists all transactions in a single INSERT
	CreateBatch(ctx context.Context, transactions []*models.Transaction) error
}

// CategoryRepositoryInterface defines the contract for category storage operations
type CategoryRepositoryInterface interface {
	FindByTitle(ctx context.Context, title string) (*models.Category, error)
	// FindByTitles returns the categories whose title is in titles, using one query
	FindByTitles(ctx context.Context, titles []string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	// CreateBatch persists all categories in a single INSERT
	CreateBatch(ctx context.Context, categories []*models.Category) error
}
