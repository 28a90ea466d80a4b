package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// AuthorModel represents the database persistence model for authors.
type AuthorModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	BornAt    *time.Time
	DiedAt    *time.Time
	Biography string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AuthorModel) TableName() string {
	return constants.TableAuthors
}
