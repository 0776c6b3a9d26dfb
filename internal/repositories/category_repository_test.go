package repositories

import (
	"context"
	"testing"

	"finance-ledger/internal/database"
	"finance-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositoryTestSuite is the test suite for Category repository
type CategoryRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test
func (s *CategoryRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.ctx = context.Background()
}

func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}

func (s *CategoryRepositoryTestSuite) TestCreate_ValidCategory() {
	category := models.NewCategory(gofakeit.BuzzWord())

	err := s.repo.Create(s.ctx, category)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.False(category.CreatedAt.IsZero())
}

func (s *CategoryRepositoryTestSuite) TestCreate_NilCategory() {
	s.ErrorIs(s.repo.Create(s.ctx, nil), ErrCategoryNil)
}

func (s *CategoryRepositoryTestSuite) TestCreate_DuplicateTitle() {
	s.Require().NoError(s.repo.Create(s.ctx, models.NewCategory("Groceries")))

	err := s.repo.Create(s.ctx, models.NewCategory("Groceries"))

	s.ErrorIs(err, ErrCategoryTitleExists)
}

func (s *CategoryRepositoryTestSuite) TestCreate_EmptyTitleIsUncategorizedBucket() {
	s.Require().NoError(s.repo.Create(s.ctx, models.NewCategory("")))

	found, err := s.repo.FindByTitle(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("", found.Title)

	s.ErrorIs(s.repo.Create(s.ctx, models.NewCategory("")), ErrCategoryTitleExists)
}

func (s *CategoryRepositoryTestSuite) TestFindByTitle_Existing() {
	created := database.CreateTestCategory(s.T(), s.db, "Salary")

	found, err := s.repo.FindByTitle(s.ctx, "Salary")

	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Salary", found.Title)
}

func (s *CategoryRepositoryTestSuite) TestFindByTitle_IsExactMatch() {
	database.CreateTestCategory(s.T(), s.db, "Salary")

	_, err := s.repo.FindByTitle(s.ctx, "Salary ")
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.repo.FindByTitle(s.ctx, "Sal")
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositoryTestSuite) TestFindByTitles() {
	groceries := database.CreateTestCategory(s.T(), s.db, "Groceries")
	salary := database.CreateTestCategory(s.T(), s.db, "Salary")
	database.CreateTestCategory(s.T(), s.db, "Housing")

	found, err := s.repo.FindByTitles(s.ctx, []string{"Groceries", "Salary", "Unknown"})

	s.Require().NoError(err)
	s.Len(found, 2)
	ids := []uuid.UUID{found[0].ID, found[1].ID}
	s.ElementsMatch([]uuid.UUID{groceries.ID, salary.ID}, ids)
}

func (s *CategoryRepositoryTestSuite) TestFindByTitles_Empty() {
	found, err := s.repo.FindByTitles(s.ctx, nil)

	s.NoError(err)
	s.NotNil(found)
	s.Empty(found)
}

func (s *CategoryRepositoryTestSuite) TestCreateBatch() {
	categories := []*models.Category{
		models.NewCategory("Groceries"),
		models.NewCategory("Leisure"),
		models.NewCategory("Transport"),
	}

	err := s.repo.CreateBatch(s.ctx, categories)

	s.Require().NoError(err)
	for _, category := range categories {
		s.NotEqual(uuid.Nil, category.ID)
	}

	var count int64
	s.db.Model(&models.Category{}).Count(&count)
	s.Equal(int64(3), count)
}

func (s *CategoryRepositoryTestSuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(s.ctx, nil))
}

func (s *CategoryRepositoryTestSuite) TestCreateBatch_ConflictWritesNothing() {
	database.CreateTestCategory(s.T(), s.db, "Leisure")

	err := s.repo.CreateBatch(s.ctx, []*models.Category{
		models.NewCategory("Groceries"),
		models.NewCategory("Leisure"),
	})

	s.ErrorIs(err, ErrCategoryTitleExists)

	_, err = s.repo.FindByTitle(s.ctx, "Groceries")
	s.ErrorIs(err, ErrCategoryNotFound)
}
