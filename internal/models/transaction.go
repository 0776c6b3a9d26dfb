package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeOutcome = "outcome"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeValue          = errors.New("transaction value must not be negative")
	ErrTitleRequired          = errors.New("transaction title is required")
	ErrCategoryRequired       = errors.New("transaction category is required")
)

// Transaction is a single income or outcome entry of the ledger.
// Value is expressed in the smallest currency unit.
type Transaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Type       string    `gorm:"type:varchar(10);not null" json:"type"`
	Value      int64     `gorm:"not null" json:"value"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// NewTransaction builds an unsaved transaction attached to the given category
func NewTransaction(title, transactionType string, value int64, category *Category) *Transaction {
	t := &Transaction{
		Title: title,
		Type:  transactionType,
		Value: value,
	}
	t.SetCategory(category)
	return t
}

// SetCategory attaches the category and copies its identifier into CategoryID
func (t *Transaction) SetCategory(category *Category) {
	t.Category = category
	if category != nil {
		t.CategoryID = category.ID
	}
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	// The category may have been persisted after SetCategory was called.
	if t.Category != nil && t.CategoryID == uuid.Nil {
		t.CategoryID = t.Category.ID
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleRequired
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Value < 0 {
		return ErrNegativeValue
	}

	if t.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}

	return nil
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsOutcome returns true for outcome transactions
func (t *Transaction) IsOutcome() bool {
	return t.Type == TransactionTypeOutcome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeOutcome:
		return true
	default:
		return false
	}
}
