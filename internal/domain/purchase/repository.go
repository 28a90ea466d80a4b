package purchase

import "context"

// Filter narrows purchase listings. A nil UserID means administrator
// access across all users.
type Filter struct {
	UserID   *uint
	Page     int
	PageSize int
}

// Repository persists purchases and their book-ownership links.
type Repository interface {
	Create(ctx context.Context, purchase *Purchase) error

	// GetByID loads a purchase. A non-nil userID restricts the lookup to
	// that user's own purchases; a purchase owned by someone else must
	// look identical to a missing one.
	GetByID(ctx context.Context, id uint, userID *uint) (*Purchase, error)

	// Update persists the paid flag and paidAt. The snapshot is immutable
	// and must never be rewritten.
	Update(ctx context.Context, purchase *Purchase) error

	// List returns purchases newest-placed first.
	List(ctx context.Context, filter Filter) ([]*Purchase, int64, error)
}

// BookPurchaseRepository persists purchase-to-book ownership links.
type BookPurchaseRepository interface {
	CreateBatch(ctx context.Context, links []*BookPurchase) error
	ExistsByUserAndBook(ctx context.Context, userID, bookID uint) (bool, error)
	CountByPurchase(ctx context.Context, purchaseID uint) (int64, error)
}
