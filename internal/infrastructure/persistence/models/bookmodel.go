package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// BookModel represents the database persistence model for books.
type BookModel struct {
	ID         uint    `gorm:"primarykey"`
	Title      string  `gorm:"not null;size:255"`
	Price      float64 `gorm:"not null"`
	CoverImage string  `gorm:"size:500"`
	Available  bool    `gorm:"not null;default:true"`
	ISBN       string  `gorm:"uniqueIndex;size:20"`
	Pages      int
	Summary    string `gorm:"type:text"`
	AuthorID   uint   `gorm:"not null;index"`
	CategoryID uint   `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Author   *AuthorModel   `gorm:"foreignKey:AuthorID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName specifies the table name for GORM
func (BookModel) TableName() string {
	return constants.TableBooks
}
