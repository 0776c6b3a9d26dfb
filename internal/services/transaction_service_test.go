package services

import (
	"context"
	"errors"
	"testing"

	"finance-ledger/internal/events"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	publisher       *recordingPublisher
	service         *transactionService
	ctx             context.Context
}

func (s *TransactionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.publisher = &recordingPublisher{}
	metrics := newTestMetrics()
	s.service = NewTransactionService(
		s.transactionRepo,
		s.categoryRepo,
		NewLedgerService(s.transactionRepo, metrics),
		s.publisher,
		newTestLogger(),
		metrics,
	).(*transactionService)
	s.ctx = context.Background()
}

func (s *TransactionServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func (s *TransactionServiceSuite) existingCategory(title string) *models.Category {
	category := models.NewCategory(title)
	category.ID = uuid.New()
	return category
}

func (s *TransactionServiceSuite) TestCreateTransaction_IncomeWithExistingCategory() {
	category := s.existingCategory("Salary")

	s.transactionRepo.EXPECT().FindAll(s.ctx).Return([]models.Transaction{}, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Salary").Return(category, nil)
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			s.Equal(category.ID, transaction.CategoryID)
			transaction.ID = uuid.New()
			return nil
		})

	transaction, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Salary",
		Value:    5000,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
	})

	s.Require().NoError(err)
	s.Equal("Salary", transaction.Title)
	s.Equal(int64(5000), transaction.Value)
	s.Equal(category, transaction.Category)
	s.Require().Len(s.publisher.published, 1)
	s.Equal(events.EventTransactionCreated, s.publisher.published[0].Type)
}

func (s *TransactionServiceSuite) TestCreateTransaction_CreatesMissingCategory() {
	s.transactionRepo.EXPECT().FindAll(s.ctx).Return([]models.Transaction{
		{Type: models.TransactionTypeIncome, Value: 5000},
	}, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Housing").Return(nil, repositories.ErrCategoryNotFound)

	var created *models.Category
	s.categoryRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, category *models.Category) error {
			s.Equal("Housing", category.Title)
			category.ID = uuid.New()
			created = category
			return nil
		})
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	transaction, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Rent",
		Value:    2000,
		Type:     models.TransactionTypeOutcome,
		Category: "Housing",
	})

	s.Require().NoError(err)
	s.Same(created, transaction.Category)
	s.Equal(created.ID, transaction.CategoryID)
}

func (s *TransactionServiceSuite) TestCreateTransaction_OutcomeEqualToTotalAllowed() {
	category := s.existingCategory("Housing")

	s.transactionRepo.EXPECT().FindAll(s.ctx).Return([]models.Transaction{
		{Type: models.TransactionTypeIncome, Value: 5000},
		{Type: models.TransactionTypeOutcome, Value: 2000},
	}, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Housing").Return(category, nil)
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Deposit",
		Value:    3000,
		Type:     models.TransactionTypeOutcome,
		Category: "Housing",
	})

	s.NoError(err)
}

func (s *TransactionServiceSuite) TestCreateTransaction_InsufficientFundsWritesNothing() {
	s.transactionRepo.EXPECT().FindAll(s.ctx).Return([]models.Transaction{
		{Type: models.TransactionTypeIncome, Value: 5000},
		{Type: models.TransactionTypeOutcome, Value: 2000},
	}, nil)

	transaction, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Car",
		Value:    4000,
		Type:     models.TransactionTypeOutcome,
		Category: "Vehicles",
	})

	s.ErrorIs(err, ErrInsufficientFunds)
	s.Nil(transaction)
	s.Empty(s.publisher.published)
}

func (s *TransactionServiceSuite) TestCreateTransaction_OutcomeOnEmptyLedgerFails() {
	s.transactionRepo.EXPECT().FindAll(s.ctx).Return(nil, nil)

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Coffee",
		Value:    1,
		Type:     models.TransactionTypeOutcome,
		Category: "Food",
	})

	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *TransactionServiceSuite) TestCreateTransaction_IncomeSkipsGuardOnNegativeTotal() {
	category := s.existingCategory("Gifts")

	s.transactionRepo.EXPECT().FindAll(s.ctx).Return([]models.Transaction{
		{Type: models.TransactionTypeOutcome, Value: 900},
	}, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Gifts").Return(category, nil)
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Birthday",
		Value:    100,
		Type:     models.TransactionTypeIncome,
		Category: "Gifts",
	})

	s.NoError(err)
}

func (s *TransactionServiceSuite) TestCreateTransaction_InvalidInput() {
	tests := []struct {
		name     string
		input    CreateTransactionInput
		expected error
	}{
		{
			name:     "unknown type",
			input:    CreateTransactionInput{Title: "x", Value: 1, Type: "transfer", Category: "Misc"},
			expected: models.ErrInvalidTransactionType,
		},
		{
			name:     "negative value",
			input:    CreateTransactionInput{Title: "x", Value: -1, Type: models.TransactionTypeIncome, Category: "Misc"},
			expected: models.ErrNegativeValue,
		},
		{
			name:     "blank title",
			input:    CreateTransactionInput{Title: "  ", Value: 10, Type: models.TransactionTypeIncome, Category: "Fresh"},
			expected: models.ErrTitleRequired,
		},
		{
			name:     "blank category",
			input:    CreateTransactionInput{Title: "x", Value: 1, Type: models.TransactionTypeIncome, Category: "  "},
			expected: models.ErrCategoryRequired,
		},
	}

	s.transactionRepo.EXPECT().FindAll(gomock.Any()).Times(0)
	s.categoryRepo.EXPECT().FindByTitle(gomock.Any(), gomock.Any()).Times(0)
	s.categoryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	s.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreateTransaction(s.ctx, tt.input)
			s.ErrorIs(err, tt.expected)
		})
	}
}

func (s *TransactionServiceSuite) TestCreateTransaction_BalanceError() {
	s.transactionRepo.EXPECT().FindAll(s.ctx).Return(nil, errors.New("db down"))

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Salary",
		Value:    10,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
	})

	s.ErrorContains(err, "failed to compute balance")
}

func (s *TransactionServiceSuite) TestCreateTransaction_CategoryLookupError() {
	s.transactionRepo.EXPECT().FindAll(s.ctx).Return(nil, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Salary").Return(nil, errors.New("db down"))

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Salary",
		Value:    10,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
	})

	s.ErrorContains(err, "failed to find category")
}

func (s *TransactionServiceSuite) TestCreateTransaction_DuplicateCategoryRaceSurfaces() {
	s.transactionRepo.EXPECT().FindAll(s.ctx).Return(nil, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Salary").Return(nil, repositories.ErrCategoryNotFound)
	s.categoryRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(repositories.ErrCategoryTitleExists)

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Salary",
		Value:    10,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
	})

	s.ErrorIs(err, repositories.ErrCategoryTitleExists)
}

func (s *TransactionServiceSuite) TestCreateTransaction_PersistError() {
	category := s.existingCategory("Salary")

	s.transactionRepo.EXPECT().FindAll(s.ctx).Return(nil, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Salary").Return(category, nil)
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Salary",
		Value:    10,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
	})

	s.EqualError(err, "failed to persist transaction: disk full")
	s.Empty(s.publisher.published)
}

func (s *TransactionServiceSuite) TestCreateTransaction_PublishFailureIsNotFatal() {
	category := s.existingCategory("Salary")
	s.publisher.err = errors.New("broker unavailable")

	s.transactionRepo.EXPECT().FindAll(s.ctx).Return(nil, nil)
	s.categoryRepo.EXPECT().FindByTitle(s.ctx, "Salary").Return(category, nil)
	s.transactionRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)

	transaction, err := s.service.CreateTransaction(s.ctx, CreateTransactionInput{
		Title:    "Salary",
		Value:    10,
		Type:     models.TransactionTypeIncome,
		Category: "Salary",
	})

	s.NoError(err)
	s.NotNil(transaction)
}
