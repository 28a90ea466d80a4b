package models

import (
	"time"

	"gorm.io/datatypes"

	"bookworm/internal/shared/constants"
)

// PurchaseModel represents the database persistence model for purchases.
// Snapshot is the cart frozen at checkout as a JSON document; it is
// written once and never updated.
type PurchaseModel struct {
	ID            uint   `gorm:"primarykey"`
	UserID        uint   `gorm:"not null;index"`
	PaymentMethod string `gorm:"not null;size:20"`
	PlacedAt      time.Time
	PaidAt        *time.Time
	IsPaid        bool           `gorm:"not null;default:false"`
	Snapshot      datatypes.JSON `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (PurchaseModel) TableName() string {
	return constants.TablePurchases
}
