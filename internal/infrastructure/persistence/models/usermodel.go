// Package models holds the GORM persistence models. They are the
// anti-corruption layer between the domain entities and the database.
package models

import (
	"time"

	"bookworm/internal/shared/constants"
)

// UserModel represents the database persistence model for application users.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:100"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Role         string `gorm:"not null;size:20;default:customer"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
