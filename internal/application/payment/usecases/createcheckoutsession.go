package usecases

import (
	"context"
	"fmt"
	"math"

	"bookworm/internal/domain/purchase"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
)

// CreateCheckoutSessionCommand opens a payment page for a pending
// purchase owned by the customer.
type CreateCheckoutSessionCommand struct {
	CustomerID    uint
	CustomerEmail string
	PurchaseID    uint
}

// CreateCheckoutSessionUseCase turns a pending purchase's frozen snapshot
// into gateway line items and opens a hosted checkout session for it.
type CreateCheckoutSessionUseCase struct {
	purchaseRepo purchase.Repository
	gateway      Gateway
	logger       logger.Interface
}

func NewCreateCheckoutSessionUseCase(
	purchaseRepo purchase.Repository,
	gateway Gateway,
	logger logger.Interface,
) *CreateCheckoutSessionUseCase {
	return &CreateCheckoutSessionUseCase{
		purchaseRepo: purchaseRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *CreateCheckoutSessionUseCase) Execute(ctx context.Context, cmd CreateCheckoutSessionCommand) (*SessionRef, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, cmd.PurchaseID, &cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("Purchase not found.")
	}
	if p.IsPaid() {
		return nil, apperrors.NewValidationError("Purchase is already paid.")
	}

	snapshot := p.Snapshot()
	items := make([]SessionLineItem, 0, len(snapshot))
	for _, view := range snapshot {
		items = append(items, SessionLineItem{
			Name:        view.Title,
			Description: view.Author.Name,
			ImageURL:    view.CoverImage,
			AmountCents: int64(math.Round(view.Price * 100)),
		})
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, CheckoutCustomer{ID: cmd.CustomerID, Email: cmd.CustomerEmail}, items, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "error", err, "purchase_id", p.ID())
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	uc.logger.Infow("checkout session created",
		"purchase_id", p.ID(),
		"user_id", cmd.CustomerID,
		"session_id", session.ID,
	)
	return session, nil
}
