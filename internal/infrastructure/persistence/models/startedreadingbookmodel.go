package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// StartedReadingBookModel represents the database persistence model for
// started-reading records. The composite unique index means a user starts
// a book once, ever. There is no foreign key to user_subscriptions: the
// record outlives the subscription it was started under.
type StartedReadingBookModel struct {
	ID                 uint      `gorm:"primarykey"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_reading_user_book"`
	BookID             uint      `gorm:"not null;uniqueIndex:idx_reading_user_book"`
	UserSubscriptionID uint      `gorm:"not null;index"`
	StartedAt          time.Time `gorm:"not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName specifies the table name for GORM
func (StartedReadingBookModel) TableName() string {
	return constants.TableStartedReadingBooks
}
