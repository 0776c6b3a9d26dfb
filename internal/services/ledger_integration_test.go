package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"finance-ledger/internal/database"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LedgerIntegrationSuite runs the services against an in-memory sqlite database
type LedgerIntegrationSuite struct {
	suite.Suite
	db                 *database.DB
	ledgerService      LedgerServiceInterface
	transactionService TransactionServiceInterface
	importService      ImportServiceInterface
	ctx                context.Context
	statements         int
}

func (s *LedgerIntegrationSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()

	metrics := newTestMetrics()
	logger := newTestLogger()
	transactionRepo := repositories.NewTransactionRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)

	s.ledgerService = NewLedgerService(transactionRepo, metrics)
	s.transactionService = NewTransactionService(transactionRepo, categoryRepo, s.ledgerService, nil, logger, metrics)
	s.importService = NewImportService(transactionRepo, categoryRepo, nil, logger, metrics)

	s.statements = 0
	s.Require().NoError(s.db.Callback().Create().After("gorm:create").Register("test:count_inserts", func(tx *gorm.DB) {
		if tx.Error == nil {
			s.statements++
		}
	}))
}

func TestLedgerIntegrationSuite(t *testing.T) {
	suite.Run(t, new(LedgerIntegrationSuite))
}

func (s *LedgerIntegrationSuite) balance() models.Balance {
	balance, err := s.ledgerService.GetBalance(s.ctx)
	s.Require().NoError(err)
	return *balance
}

func (s *LedgerIntegrationSuite) TestBalanceGuardScenario() {
	s.Equal(models.Balance{Income: 0, Outcome: 0, Total: 0}, s.balance())

	_, err := s.transactionService.CreateTransaction(s.ctx, CreateTransactionInput{
		Title: "Salary", Type: models.TransactionTypeIncome, Value: 5000, Category: "Salary",
	})
	s.Require().NoError(err)
	s.Equal(models.Balance{Income: 5000, Outcome: 0, Total: 5000}, s.balance())

	_, err = s.transactionService.CreateTransaction(s.ctx, CreateTransactionInput{
		Title: "Rent", Type: models.TransactionTypeOutcome, Value: 2000, Category: "Housing",
	})
	s.Require().NoError(err)
	s.Equal(models.Balance{Income: 5000, Outcome: 2000, Total: 3000}, s.balance())

	_, err = s.transactionService.CreateTransaction(s.ctx, CreateTransactionInput{
		Title: "Car", Type: models.TransactionTypeOutcome, Value: 4000, Category: "Vehicles",
	})
	s.ErrorIs(err, ErrInsufficientFunds)
	s.Equal(models.Balance{Income: 5000, Outcome: 2000, Total: 3000}, s.balance())

	var vehicles int64
	s.db.Model(&models.Category{}).Where("title = ?", "Vehicles").Count(&vehicles)
	s.Zero(vehicles, "rejected transaction must not create its category")
}

func (s *LedgerIntegrationSuite) TestCreateTransaction_ReusesCategoryByTitle() {
	first, err := s.transactionService.CreateTransaction(s.ctx, CreateTransactionInput{
		Title: "Salary", Type: models.TransactionTypeIncome, Value: 100, Category: "Salary",
	})
	s.Require().NoError(err)

	second, err := s.transactionService.CreateTransaction(s.ctx, CreateTransactionInput{
		Title: "Bonus", Type: models.TransactionTypeIncome, Value: 50, Category: "Salary",
	})
	s.Require().NoError(err)

	s.Equal(first.CategoryID, second.CategoryID)

	var count int64
	s.db.Model(&models.Category{}).Count(&count)
	s.Equal(int64(1), count)
}

func (s *LedgerIntegrationSuite) TestImportScenario() {
	salary := database.CreateTestCategory(s.T(), s.db, "Salary")
	path := filepath.Join(s.T().TempDir(), "import.csv")
	s.Require().NoError(os.WriteFile(path, []byte("title,type,value,category\n"+
		"Food,outcome,50,Groceries\n"+
		"Gift,income,100,Salary\n"+
		"Food2,outcome,30,Groceries\n"), 0o600))

	s.statements = 0
	result, err := s.importService.ImportTransactions(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(2, s.statements, "one category write and one transaction write")
	s.Equal(1, result.CategoriesCreated)
	s.Require().Len(result.Transactions, 3)
	s.Equal(result.Transactions[0].CategoryID, result.Transactions[2].CategoryID)
	s.Equal(salary.ID, result.Transactions[1].CategoryID)

	var categories []models.Category
	s.Require().NoError(s.db.Order("title").Find(&categories).Error)
	s.Equal([]string{"Groceries", "Salary"}, models.CategoryTitles(categories))

	listed, balance, err := s.ledgerService.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Len(listed, 3)
	s.Equal(models.Balance{Income: 100, Outcome: 80, Total: 20}, *balance)

	_, statErr := os.Stat(path)
	s.True(os.IsNotExist(statErr))
}

func (s *LedgerIntegrationSuite) TestImportMayDriveBalanceNegative() {
	path := filepath.Join(s.T().TempDir(), "import.csv")
	s.Require().NoError(os.WriteFile(path, []byte("title,type,value,category\nCar,outcome,900,Vehicles\n"), 0o600))

	_, err := s.importService.ImportTransactions(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(int64(-900), s.balance().Total)
}

func (s *LedgerIntegrationSuite) TestImportDecodeErrorWritesNothing() {
	path := filepath.Join(s.T().TempDir(), "import.csv")
	s.Require().NoError(os.WriteFile(path, []byte("title,type,value,category\nFood,outcome,50,Groceries\nBad,income,x,Salary\n"), 0o600))

	s.statements = 0
	_, err := s.importService.ImportTransactions(s.ctx, path)
	s.ErrorIs(err, ErrInvalidValue)
	s.Zero(s.statements)

	_, statErr := os.Stat(path)
	s.NoError(statErr)
}

func (s *LedgerIntegrationSuite) TestImportKeepsRowsWithoutCategory() {
	path := filepath.Join(s.T().TempDir(), "import.csv")
	s.Require().NoError(os.WriteFile(path, []byte("title,type,value,category\nA,income,10,\nB,income,5,X\n"), 0o600))

	s.statements = 0
	result, err := s.importService.ImportTransactions(s.ctx, path)
	s.Require().NoError(err)

	s.Equal(2, s.statements)
	s.Len(result.Transactions, 2)
	s.Zero(result.RowsSkipped)

	var categories []models.Category
	s.Require().NoError(s.db.Order("title").Find(&categories).Error)
	s.Equal([]string{"", "X"}, models.CategoryTitles(categories))
	s.Equal(models.Balance{Income: 15, Outcome: 0, Total: 15}, s.balance())
}

func (s *LedgerIntegrationSuite) TestCreateTransaction_BlankTitleWritesNothing() {
	_, err := s.transactionService.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "  ",
		Value:    10,
		Type:     models.TransactionTypeIncome,
		Category: "Fresh",
	})
	s.ErrorIs(err, models.ErrTitleRequired)

	var count int64
	s.Require().NoError(s.db.Model(&models.Category{}).Count(&count).Error)
	s.Zero(count)
}
