package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-ledger/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryNil         = errors.New("category cannot be nil")
	ErrCategoryTitleExists = errors.New("category with this title already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// FindByTitle retrieves the category with exactly the given title
func (r *categoryRepository) FindByTitle(ctx context.Context, title string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by title: %w", err)
	}
	return &category, nil
}

// FindByTitles retrieves all categories matching any of the titles
func (r *categoryRepository) FindByTitles(ctx context.Context, titles []string) ([]models.Category, error) {
	if len(titles) == 0 {
		return []models.Category{}, nil
	}

	var categories []models.Category
	if err := r.db.WithContext(ctx).Where("title IN ?", titles).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by titles: %w", err)
	}
	return categories, nil
}

// Create persists a single category
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return ErrCategoryNil
	}

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryTitleExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBatch persists multiple categories in one round-trip
func (r *categoryRepository) CreateBatch(ctx context.Context, categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&categories).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryTitleExists
		}
		return fmt.Errorf("failed to create batch categories: %w", err)
	}
	return nil
}
