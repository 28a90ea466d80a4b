package usecases

import (
	"time"

	"bookworm/internal/domain/catalog"
	"bookworm/internal/domain/purchase"
)

// PurchaseDTO is the API representation of a ledger entry. The snapshot
// is the cart as it looked at checkout, not the current catalog state.
type PurchaseDTO struct {
	ID            uint                   `json:"id"`
	UserID        uint                   `json:"userId"`
	PaymentMethod string                 `json:"paymentMethod"`
	PlacedAt      time.Time              `json:"placedAt"`
	PaidAt        *time.Time             `json:"paidAt,omitempty"`
	IsPaid        bool                   `json:"isPaid"`
	Snapshot      []catalog.BookLineView `json:"snapshot"`
	Total         float64                `json:"total"`
}

func toPurchaseDTO(p *purchase.Purchase) PurchaseDTO {
	return PurchaseDTO{
		ID:            p.ID(),
		UserID:        p.UserID(),
		PaymentMethod: p.PaymentMethod(),
		PlacedAt:      p.PlacedAt(),
		PaidAt:        p.PaidAt(),
		IsPaid:        p.IsPaid(),
		Snapshot:      p.Snapshot(),
		Total:         p.Total(),
	}
}
