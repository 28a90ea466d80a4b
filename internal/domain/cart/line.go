// Package cart holds the shopping cart aggregate. A cart is nothing more
// than the set of lines owned by a user; there is no cart header row.
package cart

import (
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// Line is one book a user intends to buy. (userID, bookID) is unique:
// a book cannot appear twice in the same cart.
type Line struct {
	id      uint
	userID  uint
	bookID  uint
	addedAt time.Time
}

// NewLine creates a new cart line.
func NewLine(userID, bookID uint, addedAt time.Time) (*Line, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if bookID == 0 {
		return nil, apperrors.NewValidationError("book ID is required")
	}
	return &Line{userID: userID, bookID: bookID, addedAt: addedAt}, nil
}

// ReconstructLine rebuilds a cart line from persistence.
func ReconstructLine(id, userID, bookID uint, addedAt time.Time) *Line {
	return &Line{id: id, userID: userID, bookID: bookID, addedAt: addedAt}
}

func (l *Line) ID() uint           { return l.id }
func (l *Line) UserID() uint       { return l.userID }
func (l *Line) BookID() uint       { return l.bookID }
func (l *Line) AddedAt() time.Time { return l.addedAt }

// SetID sets the line ID (only for persistence layer use)
func (l *Line) SetID(id uint) { l.id = id }
