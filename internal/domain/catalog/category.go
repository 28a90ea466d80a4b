package catalog

import (
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// Category is a catalog browsing facet for books.
type Category struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewCategory creates a new category.
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("category name is required")
	}
	now := time.Now().UTC()
	return &Category{name: name, createdAt: now, updatedAt: now}, nil
}

// ReconstructCategory rebuilds a category from persistence.
func ReconstructCategory(id uint, name string, createdAt, updatedAt time.Time) *Category {
	return &Category{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the category ID (only for persistence layer use)
func (c *Category) SetID(id uint) { c.id = id }

// Rename changes the category name.
func (c *Category) Rename(name string) error {
	if name == "" {
		return apperrors.NewValidationError("category name is required")
	}
	c.name = name
	c.updatedAt = time.Now().UTC()
	return nil
}
