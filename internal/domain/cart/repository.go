package cart

import "context"

// Repository persists cart lines. Uniqueness of (userID, bookID) is
// enforced by the store; violations surface as duplicate-key errors that
// the repository translates to domain conflicts.
type Repository interface {
	Create(ctx context.Context, line *Line) error
	GetByID(ctx context.Context, id uint) (*Line, error)
	ListByUser(ctx context.Context, userID uint) ([]*Line, error)

	// DeleteByIDAndUser removes a single line scoped by both ids so one
	// user can never delete another user's line. Returns the number of
	// rows removed.
	DeleteByIDAndUser(ctx context.Context, id, userID uint) (int64, error)

	// ClearByUser removes every line the user owns. Idempotent.
	ClearByUser(ctx context.Context, userID uint) error
}
