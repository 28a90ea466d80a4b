package models

import (
	"time"

	"gorm.io/datatypes"

	"bookworm/internal/shared/constants"
)

// BookPurchaseModel represents the database persistence model for
// purchase-to-book ownership links. The composite unique index makes
// "already owns this book" a constraint the database enforces.
type BookPurchaseModel struct {
	ID         uint           `gorm:"primarykey"`
	PurchaseID uint           `gorm:"not null;index"`
	BookID     uint           `gorm:"not null;uniqueIndex:idx_ownership_user_book"`
	UserID     uint           `gorm:"not null;uniqueIndex:idx_ownership_user_book"`
	Snapshot   datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Purchase *PurchaseModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
	User     *UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (BookPurchaseModel) TableName() string {
	return constants.TableBookPurchases
}
