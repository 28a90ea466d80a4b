package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// CategoryModel represents the database persistence model for categories.
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return constants.TableCategories
}
