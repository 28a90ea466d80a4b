package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// SubscriptionPlanModel represents the database persistence model for
// subscription plans.
type SubscriptionPlanModel struct {
	ID            uint    `gorm:"primarykey"`
	Name          string  `gorm:"uniqueIndex;not null;size:100"`
	BooksPerMonth int     `gorm:"not null"`
	PricePerMonth float64 `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionPlanModel) TableName() string {
	return constants.TableSubscriptionPlans
}
