package events

import (
	"encoding/json"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
)

const (
	EventTransactionCreated   = "transaction.created"
	EventTransactionsImported = "transactions.imported"
)

// LedgerEvent is the message published after the ledger changes.
// Single creations fill the transaction fields, imports fill the counts.
type LedgerEvent struct {
	ID                uuid.UUID  `json:"event_id"`
	Type              string     `json:"type"`
	TransactionID     *uuid.UUID `json:"transaction_id,omitempty"`
	TransactionType   string     `json:"transaction_type,omitempty"`
	Value             int64      `json:"value,omitempty"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty"`
	Count             int        `json:"count,omitempty"`
	CategoriesCreated int        `json:"categories_created,omitempty"`
	OccurredAt        time.Time  `json:"occurred_at"`
}

// NewTransactionCreatedEvent describes a single persisted transaction
func NewTransactionCreatedEvent(transaction *models.Transaction) *LedgerEvent {
	transactionID := transaction.ID
	categoryID := transaction.CategoryID
	return &LedgerEvent{
		ID:              uuid.New(),
		Type:            EventTransactionCreated,
		TransactionID:   &transactionID,
		TransactionType: transaction.Type,
		Value:           transaction.Value,
		CategoryID:      &categoryID,
		OccurredAt:      time.Now().UTC(),
	}
}

// NewTransactionsImportedEvent describes a completed bulk import
func NewTransactionsImportedEvent(count, categoriesCreated int) *LedgerEvent {
	return &LedgerEvent{
		ID:                uuid.New(),
		Type:              EventTransactionsImported,
		Count:             count,
		CategoriesCreated: categoriesCreated,
		OccurredAt:        time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON decodes an event from JSON bytes
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var event LedgerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
