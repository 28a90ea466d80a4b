package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// UserSubscriptionModel represents the database persistence model for
// customer enrollments. The unique index on UserID enforces one
// subscription per user; plan terms are denormalized copies frozen at
// subscribe time.
type UserSubscriptionModel struct {
	ID                 uint    `gorm:"primarykey"`
	UserID             uint    `gorm:"not null;uniqueIndex"`
	SubscriptionPlanID uint    `gorm:"not null;index"`
	Name               string  `gorm:"not null;size:100"`
	BooksPerMonth      int     `gorm:"not null"`
	PricePerMonth      float64 `gorm:"not null"`
	SubscribedAt       time.Time
	ExpiresAt          time.Time `gorm:"index"`
	LastRenewedAt      *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	User *UserModel             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Plan *SubscriptionPlanModel `gorm:"foreignKey:SubscriptionPlanID"`
}

// TableName specifies the table name for GORM
func (UserSubscriptionModel) TableName() string {
	return constants.TableUserSubscriptions
}
