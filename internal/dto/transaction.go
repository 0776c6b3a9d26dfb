package dto

import (
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
)

// CreateTransactionRequest represents the request body for recording a transaction
type CreateTransactionRequest struct {
	Title    string `json:"title" validate:"required,not_blank,max=255"`
	Value    *int64 `json:"value" validate:"required,gte=0"`
	Type     string `json:"type" validate:"required,transaction_type"`
	Category string `json:"category" validate:"required,not_blank,max=255"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID         uuid.UUID         `json:"id"`
	Title      string            `json:"title"`
	Type       string            `json:"type"`
	Value      int64             `json:"value"`
	CategoryID uuid.UUID         `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// BalanceResponse represents the derived ledger balance
type BalanceResponse struct {
	Income  int64 `json:"income"`
	Outcome int64 `json:"outcome"`
	Total   int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      BalanceResponse       `json:"balance"`
}

// ImportTransactionsResponse represents the result of a bulk import
type ImportTransactionsResponse struct {
	Transactions      []TransactionResponse `json:"transactions"`
	Count             int                   `json:"count"`
	CategoriesCreated int                   `json:"categories_created"`
	RowsSkipped       int                   `json:"rows_skipped"`
}

// NewTransactionResponse maps a transaction model to its API form
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:         transaction.ID,
		Title:      transaction.Title,
		Type:       transaction.Type,
		Value:      transaction.Value,
		CategoryID: transaction.CategoryID,
		CreatedAt:  transaction.CreatedAt,
	}
	if transaction.Category != nil {
		response.Category = &CategoryResponse{
			ID:        transaction.Category.ID,
			Title:     transaction.Category.Title,
			CreatedAt: transaction.Category.CreatedAt,
		}
	}
	return response
}

// NewBalanceResponse maps a balance model to its API form
func NewBalanceResponse(balance *models.Balance) BalanceResponse {
	if balance == nil {
		return BalanceResponse{}
	}
	return BalanceResponse{
		Income:  balance.Income,
		Outcome: balance.Outcome,
		Total:   balance.Total,
	}
}
