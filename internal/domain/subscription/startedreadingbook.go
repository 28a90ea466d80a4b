package subscription

import (
	"time"

	apperrors "bookworm/internal/shared/errors"
)

// StartedReadingBook records that a subscriber began reading a book under
// a specific subscription. (userID, bookID) is unique — a book is started
// once per user, ever. Rows are historical and never mutated or deleted,
// even after the subscription is gone.
type StartedReadingBook struct {
	id                 uint
	userID             uint
	bookID             uint
	userSubscriptionID uint
	startedAt          time.Time
}

// NewStartedReadingBook records the start of a reading.
func NewStartedReadingBook(userID, bookID, userSubscriptionID uint, startedAt time.Time) (*StartedReadingBook, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if bookID == 0 {
		return nil, apperrors.NewValidationError("book ID is required")
	}
	if userSubscriptionID == 0 {
		return nil, apperrors.NewValidationError("subscription ID is required")
	}
	return &StartedReadingBook{
		userID:             userID,
		bookID:             bookID,
		userSubscriptionID: userSubscriptionID,
		startedAt:          startedAt,
	}, nil
}

// ReconstructStartedReadingBook rebuilds a record from persistence.
func ReconstructStartedReadingBook(id, userID, bookID, userSubscriptionID uint, startedAt time.Time) *StartedReadingBook {
	return &StartedReadingBook{
		id:                 id,
		userID:             userID,
		bookID:             bookID,
		userSubscriptionID: userSubscriptionID,
		startedAt:          startedAt,
	}
}

func (r *StartedReadingBook) ID() uint                 { return r.id }
func (r *StartedReadingBook) UserID() uint             { return r.userID }
func (r *StartedReadingBook) BookID() uint             { return r.bookID }
func (r *StartedReadingBook) UserSubscriptionID() uint { return r.userSubscriptionID }
func (r *StartedReadingBook) StartedAt() time.Time     { return r.startedAt }

// SetID sets the record ID (only for persistence layer use)
func (r *StartedReadingBook) SetID(id uint) { r.id = id }
