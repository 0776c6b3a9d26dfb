package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCategoryTitleTooLong = errors.New("category title too long")

const maxCategoryTitleLength = 255

// Category groups transactions under a human-readable title.
// Titles are unique and matched case-sensitively. The empty title is the
// bucket for imported rows that name no category.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_title" json:"title"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// NewCategory builds an unsaved category for the given title
func NewCategory(title string) *Category {
	return &Category{Title: title}
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if len(c.Title) > maxCategoryTitleLength {
		return ErrCategoryTitleTooLong
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// CategoryTitles returns the titles of the given categories in order
func CategoryTitles(categories []Category) []string {
	titles := make([]string, 0, len(categories))
	for _, category := range categories {
		titles = append(titles, category.Title)
	}
	return titles
}
