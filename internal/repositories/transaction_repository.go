package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNil = errors.New("transaction cannot be nil")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// FindAll retrieves the whole transaction set
func (r *transactionRepository) FindAll(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// List retrieves all transactions with their categories, oldest first
func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Create persists a single transaction. The referenced category must already exist.
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return ErrTransactionNil
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch persists multiple transactions in one round-trip
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactions).Error; err != nil {
		return fmt.Errorf("failed to create batch transactions: %w", err)
	}
	return nil
}
