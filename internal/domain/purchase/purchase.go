// Package purchase holds the immutable purchase ledger aggregate.
package purchase

import (
	"time"

	"bookworm/internal/domain/catalog"
	apperrors "bookworm/internal/shared/errors"
)

// Purchase is an immutable record of a completed transaction. The snapshot
// is frozen at checkout time and never mutated afterwards; the paid flag
// transitions false -> true exactly once, driven by a confirmed payment
// event.
type Purchase struct {
	id            uint
	userID        uint
	paymentMethod string
	placedAt      time.Time
	paidAt        *time.Time
	isPaid        bool
	snapshot      []catalog.BookLineView
}

// NewPurchase creates a pending purchase from resolved cart lines.
func NewPurchase(userID uint, paymentMethod string, snapshot []catalog.BookLineView, placedAt time.Time) (*Purchase, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}
	if len(snapshot) == 0 {
		return nil, apperrors.NewValidationError("purchase snapshot cannot be empty")
	}

	return &Purchase{
		userID:        userID,
		paymentMethod: paymentMethod,
		placedAt:      placedAt,
		snapshot:      snapshot,
	}, nil
}

// ReconstructPurchase rebuilds a purchase from persistence.
func ReconstructPurchase(id, userID uint, paymentMethod string, placedAt time.Time, paidAt *time.Time, isPaid bool, snapshot []catalog.BookLineView) *Purchase {
	return &Purchase{
		id:            id,
		userID:        userID,
		paymentMethod: paymentMethod,
		placedAt:      placedAt,
		paidAt:        paidAt,
		isPaid:        isPaid,
		snapshot:      snapshot,
	}
}

func (p *Purchase) ID() uint              { return p.id }
func (p *Purchase) UserID() uint          { return p.userID }
func (p *Purchase) PaymentMethod() string { return p.paymentMethod }
func (p *Purchase) PlacedAt() time.Time   { return p.placedAt }
func (p *Purchase) PaidAt() *time.Time    { return p.paidAt }
func (p *Purchase) IsPaid() bool          { return p.isPaid }

// Snapshot returns a copy of the frozen line views so callers cannot
// mutate the ledger record through the returned slice.
func (p *Purchase) Snapshot() []catalog.BookLineView {
	out := make([]catalog.BookLineView, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}

// Total sums the snapshot line prices.
func (p *Purchase) Total() float64 {
	var total float64
	for _, line := range p.snapshot {
		total += line.Price
	}
	return total
}

// SetID sets the purchase ID (only for persistence layer use)
func (p *Purchase) SetID(id uint) { p.id = id }

// MarkPaid records payment confirmation. Calling it on an already-paid
// purchase is a conflict; webhook replay handling checks IsPaid first.
func (p *Purchase) MarkPaid(at time.Time) error {
	if p.isPaid {
		return apperrors.NewConflictError("purchase is already paid")
	}
	p.isPaid = true
	p.paidAt = &at
	return nil
}
