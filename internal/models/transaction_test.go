package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid income transaction",
			transaction: Transaction{
				Title:      "Salary",
				Type:       TransactionTypeIncome,
				Value:      5000,
				CategoryID: categoryID,
			},
		},
		{
			name: "valid outcome transaction",
			transaction: Transaction{
				Title:      "Rent",
				Type:       TransactionTypeOutcome,
				Value:      2000,
				CategoryID: categoryID,
			},
		},
		{
			name: "zero value is allowed",
			transaction: Transaction{
				Title:      "Adjustment",
				Type:       TransactionTypeIncome,
				Value:      0,
				CategoryID: categoryID,
			},
		},
		{
			name: "missing title",
			transaction: Transaction{
				Title:      "   ",
				Type:       TransactionTypeIncome,
				Value:      10,
				CategoryID: categoryID,
			},
			wantErr: ErrTitleRequired,
		},
		{
			name: "invalid type",
			transaction: Transaction{
				Title:      "Salary",
				Type:       "credit",
				Value:      10,
				CategoryID: categoryID,
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "negative value",
			transaction: Transaction{
				Title:      "Salary",
				Type:       TransactionTypeIncome,
				Value:      -1,
				CategoryID: categoryID,
			},
			wantErr: ErrNegativeValue,
		},
		{
			name: "missing category",
			transaction: Transaction{
				Title: "Salary",
				Type:  TransactionTypeIncome,
				Value: 10,
			},
			wantErr: ErrCategoryRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewTransaction_CopiesCategoryID(t *testing.T) {
	category := &Category{ID: uuid.New(), Title: "Groceries"}

	transaction := NewTransaction("Food", TransactionTypeOutcome, 50, category)

	assert.Equal(t, "Food", transaction.Title)
	assert.Equal(t, TransactionTypeOutcome, transaction.Type)
	assert.Equal(t, int64(50), transaction.Value)
	assert.Equal(t, category.ID, transaction.CategoryID)
	assert.Same(t, category, transaction.Category)
}

func TestTransaction_BeforeCreate(t *testing.T) {
	category := &Category{Title: "Groceries"}
	transaction := NewTransaction("Food", TransactionTypeOutcome, 50, category)

	// Category persisted after the transaction was built
	category.ID = uuid.New()

	require.NoError(t, transaction.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, transaction.ID)
	assert.Equal(t, category.ID, transaction.CategoryID)
	assert.False(t, transaction.CreatedAt.IsZero())
	assert.False(t, transaction.UpdatedAt.IsZero())
}

func TestTransaction_BeforeCreate_RejectsInvalid(t *testing.T) {
	transaction := &Transaction{Title: "Food", Type: "refund", Value: 5, CategoryID: uuid.New()}

	err := transaction.BeforeCreate(nil)
	assert.ErrorIs(t, err, ErrInvalidTransactionType)
}

func TestTransaction_TypePredicates(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome}
	outcome := Transaction{Type: TransactionTypeOutcome}

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsOutcome())
	assert.True(t, outcome.IsOutcome())
	assert.False(t, outcome.IsIncome())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("income"))
	assert.True(t, IsValidTransactionType("outcome"))
	assert.False(t, IsValidTransactionType("Income"))
	assert.False(t, IsValidTransactionType(""))
}

func TestCategory_Validate(t *testing.T) {
	assert.NoError(t, (&Category{Title: "Groceries"}).Validate())
	assert.NoError(t, (&Category{Title: ""}).Validate())
	assert.ErrorIs(t, (&Category{Title: strings.Repeat("x", 256)}).Validate(), ErrCategoryTitleTooLong)
}

func TestCategory_BeforeCreate(t *testing.T) {
	category := NewCategory("Salary")

	require.NoError(t, category.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCategoryTitles(t *testing.T) {
	categories := []Category{{Title: "Groceries"}, {Title: "Salary"}}

	assert.Equal(t, []string{"Groceries", "Salary"}, CategoryTitles(categories))
	assert.Empty(t, CategoryTitles(nil))
}

func TestBalance_CanCover(t *testing.T) {
	balance := Balance{Income: 5000, Outcome: 2000, Total: 3000}

	assert.True(t, balance.CanCover(3000))
	assert.True(t, balance.CanCover(0))
	assert.False(t, balance.CanCover(4000))
	assert.False(t, Balance{}.CanCover(1))
}
