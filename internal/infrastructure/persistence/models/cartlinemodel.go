package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// CartLineModel represents the database persistence model for cart lines.
// The composite unique index keeps a book in a user's cart at most once.
type CartLineModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_book"`
	BookID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_book"`
	AddedAt   time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName specifies the table name for GORM
func (CartLineModel) TableName() string {
	return constants.TableShoppingCart
}
