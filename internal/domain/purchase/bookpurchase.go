package purchase

import (
	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
)

// BookPurchase links a purchase to one book it contains, carrying its own
// copy of the line snapshot. It makes "does user X own book Y" a single
// indexed lookup instead of a scan over purchase snapshot arrays.
// Rows are created transactionally with payment confirmation and never
// updated or deleted independently of their purchase.
type BookPurchase struct {
	id         uint
	purchaseID uint
	bookID     uint
	userID     uint
	snapshot   catalog.BookLineView
}

// NewBookPurchase creates an ownership link for one purchased book.
func NewBookPurchase(purchaseID, bookID, userID uint, snapshot catalog.BookLineView) (*BookPurchase, error) {
	if purchaseID == 0 {
		return nil, apperrors.NewValidationError("purchase ID is required")
	}
	if bookID == 0 {
		return nil, apperrors.NewValidationError("book ID is required")
	}
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	return &BookPurchase{
		purchaseID: purchaseID,
		bookID:     bookID,
		userID:     userID,
		snapshot:   snapshot,
	}, nil
}

// ReconstructBookPurchase rebuilds a book purchase from persistence.
func ReconstructBookPurchase(id, purchaseID, bookID, userID uint, snapshot catalog.BookLineView) *BookPurchase {
	return &BookPurchase{
		id:         id,
		purchaseID: purchaseID,
		bookID:     bookID,
		userID:     userID,
		snapshot:   snapshot,
	}
}

func (bp *BookPurchase) ID() uint                       { return bp.id }
func (bp *BookPurchase) PurchaseID() uint               { return bp.purchaseID }
func (bp *BookPurchase) BookID() uint                   { return bp.bookID }
func (bp *BookPurchase) UserID() uint                   { return bp.userID }
func (bp *BookPurchase) Snapshot() catalog.BookLineView { return bp.snapshot }

// SetID sets the book purchase ID (only for persistence layer use)
func (bp *BookPurchase) SetID(id uint) { bp.id = id }
