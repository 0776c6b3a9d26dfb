package services

import (
	"context"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"
)

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewLedgerService(transactionRepo repositories.TransactionRepositoryInterface, metrics MetricsRecorderInterface) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// GetBalance scans every stored transaction and sums income and outcome.
// Storage errors are returned unchanged.
func (s *ledgerService) GetBalance(ctx context.Context) (*models.Balance, error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	balance := CalculateBalance(transactions)
	s.recordBalance(balance)

	return &balance, nil
}

// ListTransactions returns the ledger in creation order together with its balance
func (s *ledgerService) ListTransactions(ctx context.Context) ([]models.Transaction, *models.Balance, error) {
	transactions, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	balance := CalculateBalance(transactions)
	s.recordBalance(balance)

	return transactions, &balance, nil
}

func (s *ledgerService) recordBalance(balance models.Balance) {
	if s.metrics != nil {
		s.metrics.RecordGauge("ledger.balance.total", float64(balance.Total), nil)
	}
}

// CalculateBalance folds transactions into income, outcome and total.
// Any type other than income counts toward outcome.
func CalculateBalance(transactions []models.Transaction) models.Balance {
	var balance models.Balance
	for _, transaction := range transactions {
		if transaction.IsIncome() {
			balance.Income += transaction.Value
		} else {
			balance.Outcome += transaction.Value
		}
	}
	balance.Total = balance.Income - balance.Outcome
	return balance
}
